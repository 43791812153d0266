package classify

// Style tokens for political outcome classifications. Token identity is
// part of the classifier's contract; the rendering layer maps tokens to
// colors and may change freely without touching these constants.
const (
	TokenDemWon    = "outcome-dem-won"
	TokenLeanDem   = "outcome-lean-dem"
	TokenContested = "outcome-contested"
	TokenLeanRep   = "outcome-lean-rep"
	TokenRepWon    = "outcome-rep-won"
)

// PoliticalOutcome returns the built-in rule set classifying a fractional
// Democratic two-party vote share into an electoral outcome.
//
// Thresholds (boundary values resolve upward):
//
//	>= 0.65  Dem-Won
//	>= 0.52  Lean Dem
//	>= 0.48  Contested
//	>= 0.35  Lean Rep
//	else     Rep-Won
func PoliticalOutcome() RuleSet {
	return MustRuleSet("political-outcome", FractionDomain, []Rule{
		{Bound: 0.65, Label: "Dem-Won", Token: TokenDemWon},
		{Bound: 0.52, Label: "Lean Dem", Token: TokenLeanDem},
		{Bound: 0.48, Label: "Contested", Token: TokenContested},
		{Bound: 0.35, Label: "Lean Rep", Token: TokenLeanRep},
		{Bound: 0, Label: "Rep-Won", Token: TokenRepWon},
	})
}
