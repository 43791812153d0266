package config

import (
	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/nav"
)

// RuleSetPoliticalOutcome names the stock vote-share rule set.
const RuleSetPoliticalOutcome = "political-outcome"

// Default returns the built-in dashboard configuration: the stock
// political outcome thresholds and the standard section layout of the
// redistricting dashboard.
func Default() *Dashboard {
	return &Dashboard{
		RuleSets: map[string]classify.RuleSet{
			RuleSetPoliticalOutcome: classify.PoliticalOutcome(),
		},
		Nav: nav.MustTree([]nav.Node{
			{ID: "overview", Label: "State Overview"},
			{ID: "demographics", Label: "Demographics", Subsections: []nav.Node{
				{ID: "demo-table", Label: "Population Table"},
				{ID: "demo-feasibility", Label: "Gingles Feasibility"},
			}},
			{ID: "precincts", Label: "Precinct Analysis", Subsections: []nav.Node{
				{ID: "prec-outcomes", Label: "Election Outcomes"},
				{ID: "prec-regions", Label: "Region Breakdown"},
			}},
			{ID: "ensemble", Label: "Ensemble Analysis", Subsections: []nav.Node{
				{ID: "ens-summary", Label: "Summary"},
				{ID: "ens-splits", Label: "Seat Splits"},
			}},
		}),
	}
}
