// Package testutil provides shared record fixtures for tests.
//
// The fixtures model one small, fully analyzable state so tests across
// packages agree on the expected classifications: precinct "01073-0042"
// is always urban and Dem-won, the Black VAP is always Gingles-feasible.
package testutil

import (
	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/records"
)

// StateAL returns the fixture state summary.
func StateAL() records.StateSummary {
	return records.StateSummary{
		ID:           "AL",
		Name:         "Alabama",
		Preclearance: true,
		NumDistricts: 7,
	}
}

// Precincts returns the fixture precincts for StateAL, in geoid order.
//
// Shares by construction: 01001-0010 is 30.0% Dem (Rep-Won),
// 01073-0042 is 71.8% Dem (Dem-Won), 01097-0007 is 50.0% Dem
// (Contested).
func Precincts() []records.Precinct {
	return []records.Precinct{
		{GeoID: "01001-0010", State: "AL", Region: classify.RegionRural, VotesDem: 1200, VotesRep: 2800, VAP: 5200},
		{GeoID: "01073-0042", State: "AL", Region: classify.RegionUrban, VotesDem: 6100, VotesRep: 2400, VAP: 11000},
		{GeoID: "01097-0007", State: "AL", Region: classify.RegionSuburban, VotesDem: 1500, VotesRep: 1500, VAP: 4100},
	}
}

// Demographics returns the fixture demographic groups for StateAL.
// The Black VAP clears the feasibility threshold, the Asian VAP does
// not.
func Demographics() []records.DemographicGroup {
	return []records.DemographicGroup{
		{Group: classify.RaceBlack, VAP: 980000, VAPShare: 0.258, Feasible: true},
		{Group: classify.RaceWhite, VAP: 2500000, VAPShare: 0.651, Feasible: true},
		{Group: classify.RaceAsian, VAP: 52000, VAPShare: 0.014, Feasible: false},
	}
}
