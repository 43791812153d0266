package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/records"
)

// plainStyles renders without any styling, so expected output is exact
// text regardless of the terminal the tests run in.
func plainStyles() Styles {
	return Styles{}
}

func TestTableRenderExact(t *testing.T) {
	tbl := &Table{
		Title:   "T",
		Headers: []string{"A", "Long"},
	}
	tbl.AddRow("xx", "y")

	got := tbl.Render(plainStyles())
	want := strings.Join([]string{
		"T",
		"A   Long",
		"--------",
		"xx  y",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestTableRenderEmpty(t *testing.T) {
	tbl := &Table{Headers: []string{"A"}}
	assert.Equal(t, "(no data)\n", tbl.Render(plainStyles()))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "986,000", FormatCount(986000))
	assert.Equal(t, "2,400,000", FormatCount(2400000))
	assert.Equal(t, "0", FormatCount(0))
}

func TestFormatShare(t *testing.T) {
	assert.Equal(t, "25.9%", FormatShare(0.259))
	assert.Equal(t, "100.0%", FormatShare(1))
	assert.Equal(t, "0.0%", FormatShare(0))
}

func TestDemographicsTable(t *testing.T) {
	groups := []records.DemographicGroup{
		{Group: classify.RaceBlack, VAP: 986000, VAPShare: 0.259, Feasible: true},
		{Group: classify.RaceWhite, VAP: 2400000, VAPShare: 0.631, Feasible: true},
		{Group: classify.RaceHispanic, VAP: 399999, VAPShare: 0.105, Feasible: false},
	}
	out, err := DemographicsTable("AL", groups, plainStyles())
	require.NoError(t, err)

	assert.Contains(t, out, "AL - Demographics")
	assert.Contains(t, out, "Black")
	assert.Contains(t, out, "986,000")
	assert.Contains(t, out, "25.9%")
	assert.Contains(t, out, "Not Feasible")

	// Deterministic: same input renders the identical table.
	again, err := DemographicsTable("AL", groups, plainStyles())
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestDemographicsTableUnknownGroup(t *testing.T) {
	groups := []records.DemographicGroup{
		{Group: classify.Race("martian"), VAP: 1},
	}
	_, err := DemographicsTable("AL", groups, plainStyles())
	require.Error(t, err)
	assert.True(t, classify.IsUnknownCategoryError(err), "unknown group must fail, never render unstyled")
}

func TestPrecinctOutcomesTable(t *testing.T) {
	outcome := classify.PoliticalOutcome()
	precincts := []records.Precinct{
		{GeoID: "g1", State: "AL", Region: classify.RegionUrban, VotesDem: 700, VotesRep: 300, VAP: 1500},
		{GeoID: "g2", State: "AL", Region: classify.RegionSuburban, VotesDem: 500, VotesRep: 500, VAP: 1100},
		{GeoID: "g3", State: "AL", Region: classify.RegionRural, VotesDem: 0, VotesRep: 0, VAP: 900},
	}
	out, err := PrecinctOutcomesTable("AL", precincts, outcome, plainStyles())
	require.NoError(t, err)

	assert.Contains(t, out, "Dem-Won")   // 0.70
	assert.Contains(t, out, "Contested") // 0.50 exactly
	assert.Contains(t, out, "No Votes")  // zero two-party votes
	assert.Contains(t, out, "70.0%")
	assert.Contains(t, out, "50.0%")
}

func TestRegionBreakdownTable(t *testing.T) {
	precincts := []records.Precinct{
		{GeoID: "g1", Region: classify.RegionUrban, VotesDem: 80, VotesRep: 20},
		{GeoID: "g2", Region: classify.RegionUrban, VotesDem: 60, VotesRep: 40},
		{GeoID: "g3", Region: classify.RegionRural, VotesDem: 0, VotesRep: 0},
	}
	out, err := RegionBreakdownTable("AL", precincts, plainStyles())
	require.NoError(t, err)

	assert.Contains(t, out, "Urban")
	assert.Contains(t, out, "70.0%") // average of 0.80 and 0.60
	assert.Contains(t, out, "Rural")
	assert.Contains(t, out, "n/a") // no two-party votes anywhere in the region
	assert.NotContains(t, out, "Suburban", "regions without precincts are omitted")
}
