package classify

// Style tokens for Gingles feasibility badges.
const (
	TokenFeasible   = "feasibility-met"
	TokenInfeasible = "feasibility-unmet"
)

// ClassifyFeasibility maps a group's Gingles feasibility flag to its
// badge. The flag itself is computed upstream (sufficient voting-age
// population for a minority-vote-dilution claim); no threshold logic
// lives here. Total function, no error path.
func ClassifyFeasibility(feasible bool) Classification {
	if feasible {
		return Classification{Label: "Feasible", Token: TokenFeasible}
	}
	return Classification{Label: "Not Feasible", Token: TokenInfeasible}
}
