package classify

import "fmt"

// Classification is the output of every classifier: a user-visible label
// plus an opaque style token. The rendering layer owns the mapping from
// token to visual treatment; the classifier only guarantees that the same
// input always yields the same token.
type Classification struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Domain declares the closed numeric range a rule set accepts.
// Values outside [Min, Max] are rejected with DomainRangeError.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FractionDomain is the canonical unit domain for share-like values.
// All threshold rule sets in districtlens use fractions in [0, 1];
// percentage inputs are converted at the boundary via FromPercent.
var FractionDomain = Domain{Min: 0, Max: 1}

// Contains reports whether v lies inside the domain (bounds inclusive).
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Rule is a single threshold rule: any value >= Bound (that no stricter
// rule claimed first) classifies as (Label, Token).
type Rule struct {
	Bound float64 `json:"bound"`
	Label string  `json:"label"`
	Token string  `json:"token"`
}

// RuleSet is an ordered list of threshold rules over a declared domain.
//
// Rule sets are immutable after construction. NewRuleSet enforces the
// invariants that make classification total and unambiguous:
//   - at least one rule
//   - bounds strictly descending
//   - the final bound equals the domain minimum (no gap at the bottom)
type RuleSet struct {
	name   string
	domain Domain
	rules  []Rule
}

// NewRuleSet validates and constructs a rule set.
//
// Rules must be listed from the most restrictive (highest bound) to the
// least restrictive. The scan order is semantically load-bearing: a value
// exactly on a threshold must resolve to the stricter category, which the
// descending scan guarantees. Returns RuleSetError on any violation.
func NewRuleSet(name string, domain Domain, rules []Rule) (RuleSet, error) {
	if name == "" {
		return RuleSet{}, &RuleSetError{Name: name, Message: "name is required"}
	}
	if domain.Min >= domain.Max {
		return RuleSet{}, &RuleSetError{
			Name:    name,
			Message: fmt.Sprintf("domain min %v must be below max %v", domain.Min, domain.Max),
		}
	}
	if len(rules) == 0 {
		return RuleSet{}, &RuleSetError{Name: name, Message: "at least one rule is required"}
	}
	for i, r := range rules {
		if r.Label == "" || r.Token == "" {
			return RuleSet{}, &RuleSetError{
				Name:    name,
				Message: fmt.Sprintf("rule %d: label and token are required", i),
			}
		}
		if !domain.Contains(r.Bound) {
			return RuleSet{}, &RuleSetError{
				Name:    name,
				Message: fmt.Sprintf("rule %d: bound %v outside domain [%v, %v]", i, r.Bound, domain.Min, domain.Max),
			}
		}
		if i > 0 && r.Bound >= rules[i-1].Bound {
			return RuleSet{}, &RuleSetError{
				Name:    name,
				Message: fmt.Sprintf("rule %d: bound %v not below previous bound %v", i, r.Bound, rules[i-1].Bound),
			}
		}
	}
	if last := rules[len(rules)-1].Bound; last != domain.Min {
		return RuleSet{}, &RuleSetError{
			Name:    name,
			Message: fmt.Sprintf("final bound %v must equal domain min %v for totality", last, domain.Min),
		}
	}

	// Copy so callers can't mutate the rule list after construction.
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return RuleSet{name: name, domain: domain, rules: owned}, nil
}

// MustRuleSet is NewRuleSet that panics on error. For package-internal
// built-in rule sets whose validity is covered by tests.
func MustRuleSet(name string, domain Domain, rules []Rule) RuleSet {
	rs, err := NewRuleSet(name, domain, rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// Name returns the rule set's identifier.
func (rs RuleSet) Name() string { return rs.name }

// Domain returns the declared input domain.
func (rs RuleSet) Domain() Domain { return rs.domain }

// Rules returns a copy of the rule list in scan order.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Classify maps a value to exactly one classification.
//
// The rule list is scanned from the highest bound downward and the first
// rule with bound <= value wins. Construction invariants guarantee the
// scan always terminates with a match, so the only error path is a value
// outside the declared domain.
func (rs RuleSet) Classify(value float64) (Classification, error) {
	if !rs.domain.Contains(value) {
		return Classification{}, &DomainRangeError{
			RuleSet: rs.name,
			Value:   value,
			Min:     rs.domain.Min,
			Max:     rs.domain.Max,
		}
	}
	for _, r := range rs.rules {
		if value >= r.Bound {
			return Classification{Label: r.Label, Token: r.Token}, nil
		}
	}
	// Unreachable when invariants hold; kept as a hard failure so a
	// corrupted rule set cannot mislabel data.
	return Classification{}, &RuleSetError{Name: rs.name, Message: "no rule matched (broken totality invariant)"}
}

// FromPercent converts a percentage in [0, 100] to the canonical fraction
// unit. This is the single sanctioned conversion point: every boundary
// that receives percentages converts here, so the core never has to guess
// which unit a caller intended.
func FromPercent(p float64) (float64, error) {
	if p < 0 || p > 100 {
		return 0, &DomainRangeError{RuleSet: "percent", Value: p, Min: 0, Max: 100}
	}
	return p / 100, nil
}
