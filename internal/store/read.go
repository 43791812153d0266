package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/districtlens/districtlens/internal/classify"
	"github.com/districtlens/districtlens/internal/records"
)

// ListStates returns all state summaries ordered by id.
func (s *Store) ListStates(ctx context.Context) ([]records.StateSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, preclearance, num_districts, has_data
		FROM states
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query states: %w", err)
	}
	defer rows.Close()

	states := []records.StateSummary{}
	for rows.Next() {
		var st records.StateSummary
		var preclearance, hasData int
		if err := rows.Scan(&st.ID, &st.Name, &preclearance, &st.NumDistricts, &hasData); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		st.Preclearance = preclearance != 0
		st.HasData = hasData != 0
		states = append(states, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate states: %w", err)
	}
	return states, nil
}

// State returns one state summary, or sql.ErrNoRows if absent.
func (s *Store) State(ctx context.Context, id string) (records.StateSummary, error) {
	var st records.StateSummary
	var preclearance, hasData int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, preclearance, num_districts, has_data
		FROM states WHERE id = ?
	`, id).Scan(&st.ID, &st.Name, &preclearance, &st.NumDistricts, &hasData)
	if err != nil {
		return records.StateSummary{}, fmt.Errorf("query state %s: %w", id, err)
	}
	st.Preclearance = preclearance != 0
	st.HasData = hasData != 0
	return st, nil
}

// ListPrecincts returns a state's precincts in deterministic order
// (geoid, binary collation), so rendered tables are stable across runs.
//
// Region keys are parsed back into the closed enumeration; a row that no
// longer parses means the database holds keys the classifier does not
// know, and the read fails loudly rather than mislabeling.
func (s *Store) ListPrecincts(ctx context.Context, state string) ([]records.Precinct, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT geoid, state, region, votes_dem, votes_rep, vap
		FROM precincts
		WHERE state = ?
		ORDER BY geoid COLLATE BINARY ASC
	`, state)
	if err != nil {
		return nil, fmt.Errorf("query precincts: %w", err)
	}
	defer rows.Close()

	precincts := []records.Precinct{}
	for rows.Next() {
		var p records.Precinct
		var region string
		if err := rows.Scan(&p.GeoID, &p.State, &region, &p.VotesDem, &p.VotesRep, &p.VAP); err != nil {
			return nil, fmt.Errorf("scan precinct: %w", err)
		}
		p.Region, err = classify.ParseRegion(region)
		if err != nil {
			return nil, fmt.Errorf("precinct %s: %w", p.GeoID, err)
		}
		precincts = append(precincts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate precincts: %w", err)
	}
	return precincts, nil
}

// GroupSummaries returns a state's demographic groups with VAP shares
// and the Gingles feasibility flag applied at GinglesFeasibilityVAP.
// Groups are ordered by the enumeration's display order; groups without
// rows are omitted.
func (s *Store) GroupSummaries(ctx context.Context, state string) ([]records.DemographicGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT grp, vap
		FROM demographics
		WHERE state = ?
		ORDER BY grp COLLATE BINARY ASC
	`, state)
	if err != nil {
		return nil, fmt.Errorf("query demographics: %w", err)
	}
	defer rows.Close()

	byGroup := map[classify.Race]int64{}
	var total int64
	for rows.Next() {
		var grp string
		var vap int64
		if err := rows.Scan(&grp, &vap); err != nil {
			return nil, fmt.Errorf("scan demographics: %w", err)
		}
		race, err := classify.ParseRace(grp)
		if err != nil {
			return nil, fmt.Errorf("demographics for %s: %w", state, err)
		}
		byGroup[race] = vap
		total += vap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate demographics: %w", err)
	}

	groups := []records.DemographicGroup{}
	for _, race := range classify.Races {
		vap, ok := byGroup[race]
		if !ok {
			continue
		}
		share := 0.0
		if total > 0 {
			share = float64(vap) / float64(total)
		}
		groups = append(groups, records.DemographicGroup{
			Group:    race,
			VAP:      vap,
			VAPShare: share,
			Feasible: vap >= GinglesFeasibilityVAP,
		})
	}
	return groups, nil
}

// Batches returns ingest batch audit rows, newest first (UUIDv7 ids are
// time-sortable, so id ordering is time ordering).
func (s *Store) Batches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, record_count, created_at
		FROM ingest_batches
		ORDER BY id COLLATE BINARY DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	batches := []Batch{}
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.Kind, &b.RecordCount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}

// Batch is one ingest audit row.
type Batch struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	RecordCount int    `json:"record_count"`
	CreatedAt   string `json:"created_at"`
}

// IsNotFound reports whether an error from State wraps sql.ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
