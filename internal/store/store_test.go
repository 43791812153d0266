package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/records"
	"github.com/districtlens/districtlens/internal/testutil"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedState(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.UpsertState(context.Background(), testutil.StateAL()))
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestUpsertAndListStates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedState(t, s)
	require.NoError(t, s.UpsertState(ctx, records.StateSummary{ID: "OR", Name: "Oregon", NumDistricts: 6}))

	// Upsert replaces in place.
	require.NoError(t, s.UpsertState(ctx, records.StateSummary{ID: "AL", Name: "Alabama", NumDistricts: 7, HasData: true}))

	states, err := s.ListStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "AL", states[0].ID)
	assert.Equal(t, "OR", states[1].ID)
	assert.False(t, states[0].Preclearance, "upsert replaced the earlier row")

	st, err := s.State(ctx, "AL")
	require.NoError(t, err)
	assert.Equal(t, 7, st.NumDistricts)

	_, err = s.State(ctx, "ZZ")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestIngestPrecinctsDeterministicOrder(t *testing.T) {
	s := openTestStore(t, WithBatchIDGenerator(NewFixedGenerator("batch-1")))
	ctx := context.Background()
	seedState(t, s)

	batchID, err := s.IngestPrecincts(ctx, []records.Precinct{
		{GeoID: "01001000003", State: "AL", Region: classify.RegionRural, VotesDem: 120, VotesRep: 480, VAP: 900},
		{GeoID: "01001000001", State: "AL", Region: classify.RegionUrban, VotesDem: 700, VotesRep: 300, VAP: 1500},
		{GeoID: "01001000002", State: "AL", Region: classify.RegionSuburban, VotesDem: 410, VotesRep: 390, VAP: 1100},
	})
	require.NoError(t, err)
	assert.Equal(t, "batch-1", batchID)

	precincts, err := s.ListPrecincts(ctx, "AL")
	require.NoError(t, err)
	require.Len(t, precincts, 3)
	assert.Equal(t, "01001000001", precincts[0].GeoID)
	assert.Equal(t, "01001000002", precincts[1].GeoID)
	assert.Equal(t, "01001000003", precincts[2].GeoID)
	assert.Equal(t, classify.RegionUrban, precincts[0].Region)
}

func TestReingestReplacesPrecinct(t *testing.T) {
	s := openTestStore(t, WithBatchIDGenerator(NewFixedGenerator("batch-1", "batch-2")))
	ctx := context.Background()
	seedState(t, s)

	_, err := s.IngestPrecincts(ctx, []records.Precinct{
		{GeoID: "g1", State: "AL", Region: classify.RegionUrban, VotesDem: 10, VotesRep: 90, VAP: 100},
	})
	require.NoError(t, err)

	// Corrected record file: newest batch wins.
	_, err = s.IngestPrecincts(ctx, []records.Precinct{
		{GeoID: "g1", State: "AL", Region: classify.RegionUrban, VotesDem: 90, VotesRep: 10, VAP: 100},
	})
	require.NoError(t, err)

	precincts, err := s.ListPrecincts(ctx, "AL")
	require.NoError(t, err)
	require.Len(t, precincts, 1)
	assert.Equal(t, int64(90), precincts[0].VotesDem)
}

func TestIngestEmptyBatch(t *testing.T) {
	s := openTestStore(t)
	_, err := s.IngestPrecincts(context.Background(), nil)
	require.Error(t, err)
}

func TestGroupSummariesFeasibilityThreshold(t *testing.T) {
	s := openTestStore(t, WithBatchIDGenerator(NewFixedGenerator("batch-1")))
	ctx := context.Background()
	seedState(t, s)

	// One group exactly at the threshold, one just below, one far above.
	_, err := s.IngestDemographics(ctx, "AL", []records.DemographicGroup{
		{Group: classify.RaceBlack, VAP: 400000},
		{Group: classify.RaceHispanic, VAP: 399999},
		{Group: classify.RaceWhite, VAP: 2400000},
	})
	require.NoError(t, err)

	groups, err := s.GroupSummaries(ctx, "AL")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	byGroup := map[classify.Race]records.DemographicGroup{}
	for _, g := range groups {
		byGroup[g.Group] = g
	}
	assert.True(t, byGroup[classify.RaceBlack].Feasible, "threshold is inclusive")
	assert.False(t, byGroup[classify.RaceHispanic].Feasible)
	assert.True(t, byGroup[classify.RaceWhite].Feasible)

	// Shares sum to 1 and display order follows the enumeration.
	var sum float64
	for _, g := range groups {
		sum += g.VAPShare
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, classify.RaceBlack, groups[0].Group)
	assert.Equal(t, classify.RaceWhite, groups[1].Group)
	assert.Equal(t, classify.RaceHispanic, groups[2].Group)
}

func TestBatchesAudit(t *testing.T) {
	s := openTestStore(t, WithBatchIDGenerator(NewFixedGenerator("batch-1", "batch-2")))
	ctx := context.Background()
	seedState(t, s)

	_, err := s.IngestDemographics(ctx, "AL", []records.DemographicGroup{
		{Group: classify.RaceBlack, VAP: 1000},
	})
	require.NoError(t, err)
	_, err = s.IngestPrecincts(ctx, []records.Precinct{
		{GeoID: "g1", State: "AL", Region: classify.RegionRural, VotesDem: 1, VotesRep: 1, VAP: 10},
	})
	require.NoError(t, err)

	batches, err := s.Batches(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "batch-2", batches[0].ID, "newest first")
	assert.Equal(t, "precincts", batches[0].Kind)
	assert.Equal(t, 1, batches[0].RecordCount)
	assert.Equal(t, "demographics", batches[1].Kind)
}
