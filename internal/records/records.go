// Package records defines the typed records districtlens consumes from
// its data producers and the unit conversions applied at that boundary.
//
// Upstream payloads arrive with string category keys and mixed units
// (raw counts, percentages, vote totals). Everything is normalized here:
// category strings parse into the closed enumerations of
// internal/classify, and share-like values become canonical fractions in
// [0, 1]. Schema drift - a key the classifier does not know - surfaces
// at this boundary as UnknownCategoryError, before it can reach a table.
package records

import (
	"fmt"

	"github.com/districtlens/districtlens/internal/classify"
)

// StateSummary describes one analyzable state.
type StateSummary struct {
	// ID is the two-letter state abbreviation (e.g. "AL", "OR").
	ID string `json:"id"`

	Name string `json:"name"`

	// Preclearance marks states historically subject to Voting Rights
	// Act Section 5 preclearance.
	Preclearance bool `json:"preclearance"`

	NumDistricts int `json:"num_districts"`

	// HasData marks states with loaded precinct and analytics data.
	HasData bool `json:"has_data"`
}

// Precinct is one voting precinct with the attributes the presentation
// layer classifies: its region code and two-party vote totals.
type Precinct struct {
	// GeoID is the Census Bureau geographic identifier, the canonical
	// precinct key when joining datasets.
	GeoID string `json:"geoid"`

	// State is the two-letter state abbreviation.
	State string `json:"state"`

	// Region is the rural-urban code, already parsed into the closed
	// enumeration.
	Region classify.Region `json:"region"`

	VotesDem int64 `json:"votes_dem"`
	VotesRep int64 `json:"votes_rep"`

	// VAP is the precinct's total voting age population.
	VAP int64 `json:"vap"`
}

// DemShare returns the fractional Democratic share of the two-party
// vote, in the canonical [0, 1] unit the classifier expects.
// A precinct with no recorded two-party votes has no share.
func (p Precinct) DemShare() (float64, error) {
	total := p.VotesDem + p.VotesRep
	if total == 0 {
		return 0, fmt.Errorf("precinct %s: no two-party votes recorded", p.GeoID)
	}
	return float64(p.VotesDem) / float64(total), nil
}

// DemographicGroup is a per-group population summary for one state.
type DemographicGroup struct {
	// Group is the race key, already parsed into the closed enumeration.
	Group classify.Race `json:"group"`

	// VAP is the group's voting age population count.
	VAP int64 `json:"vap"`

	// VAPShare is the group's fraction of the state's total VAP, in the
	// canonical [0, 1] unit.
	VAPShare float64 `json:"vap_share"`

	// Feasible is the Gingles feasibility flag computed by the data
	// producer (sufficient VAP for a vote-dilution claim).
	Feasible bool `json:"feasible"`
}

// StateInput is the raw wire form of a state record.
type StateInput struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Preclearance bool   `json:"preclearance" yaml:"preclearance"`
	NumDistricts int    `json:"num_districts" yaml:"num_districts"`
}

// Parse normalizes the raw record.
func (in StateInput) Parse() (StateSummary, error) {
	if in.ID == "" {
		return StateSummary{}, fmt.Errorf("state record: id is required")
	}
	if in.NumDistricts < 0 {
		return StateSummary{}, fmt.Errorf("state %s: negative district count", in.ID)
	}
	return StateSummary{
		ID:           in.ID,
		Name:         in.Name,
		Preclearance: in.Preclearance,
		NumDistricts: in.NumDistricts,
	}, nil
}

// PrecinctInput is the raw wire form of a precinct record, before
// category parsing. Region arrives as a string key.
type PrecinctInput struct {
	GeoID    string `json:"geoid" yaml:"geoid"`
	State    string `json:"state" yaml:"state"`
	Region   string `json:"region" yaml:"region"`
	VotesDem int64  `json:"votes_dem" yaml:"votes_dem"`
	VotesRep int64  `json:"votes_rep" yaml:"votes_rep"`
	VAP      int64  `json:"vap" yaml:"vap"`
}

// Parse normalizes the raw record, rejecting unknown region keys and
// negative counts.
func (in PrecinctInput) Parse() (Precinct, error) {
	if in.GeoID == "" {
		return Precinct{}, fmt.Errorf("precinct record: geoid is required")
	}
	region, err := classify.ParseRegion(in.Region)
	if err != nil {
		return Precinct{}, fmt.Errorf("precinct %s: %w", in.GeoID, err)
	}
	if in.VotesDem < 0 || in.VotesRep < 0 || in.VAP < 0 {
		return Precinct{}, fmt.Errorf("precinct %s: negative counts", in.GeoID)
	}
	return Precinct{
		GeoID:    in.GeoID,
		State:    in.State,
		Region:   region,
		VotesDem: in.VotesDem,
		VotesRep: in.VotesRep,
		VAP:      in.VAP,
	}, nil
}

// DemographicInput is the raw wire form of a demographic group record.
// VAPPercentage arrives in the producer's percent unit (0-100) and is
// converted to the canonical fraction here, nowhere else.
type DemographicInput struct {
	Group         string  `json:"group" yaml:"group"`
	State         string  `json:"state" yaml:"state"`
	VAP           int64   `json:"vap" yaml:"vap"`
	VAPPercentage float64 `json:"vap_percentage" yaml:"vap_percentage"`
	Feasible      bool    `json:"is_feasible" yaml:"is_feasible"`
}

// Parse normalizes the raw record, rejecting unknown group keys and
// out-of-range percentages.
func (in DemographicInput) Parse() (DemographicGroup, error) {
	group, err := classify.ParseRace(in.Group)
	if err != nil {
		return DemographicGroup{}, fmt.Errorf("demographic record: %w", err)
	}
	share, err := classify.FromPercent(in.VAPPercentage)
	if err != nil {
		return DemographicGroup{}, fmt.Errorf("demographic record %s: %w", in.Group, err)
	}
	if in.VAP < 0 {
		return DemographicGroup{}, fmt.Errorf("demographic record %s: negative VAP", in.Group)
	}
	return DemographicGroup{
		Group:    group,
		VAP:      in.VAP,
		VAPShare: share,
		Feasible: in.Feasible,
	}, nil
}
