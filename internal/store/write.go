package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/districtlens/districtlens/internal/records"
)

// UpsertState inserts or updates a state summary row.
func (s *Store) UpsertState(ctx context.Context, st records.StateSummary) error {
	if st.ID == "" {
		return fmt.Errorf("upsert state: id is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO states (id, name, preclearance, num_districts, has_data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			preclearance = excluded.preclearance,
			num_districts = excluded.num_districts,
			has_data = excluded.has_data
	`, st.ID, st.Name, boolToInt(st.Preclearance), st.NumDistricts, boolToInt(st.HasData))
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// IngestPrecincts writes a batch of precinct records under a single
// transaction, stamped with one batch id. Re-ingesting a geoid replaces
// the previous row (newest batch wins), so loading a corrected record
// file is safe.
//
// Returns the batch id on success.
func (s *Store) IngestPrecincts(ctx context.Context, precincts []records.Precinct) (string, error) {
	if len(precincts) == 0 {
		return "", fmt.Errorf("ingest precincts: empty batch")
	}
	batchID := s.batchID.Generate()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("ingest precincts: %w", err)
	}
	defer tx.Rollback()

	if err := insertBatch(ctx, tx, batchID, "precincts", len(precincts)); err != nil {
		return "", err
	}
	for _, p := range precincts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO precincts (geoid, state, region, votes_dem, votes_rep, vap, batch_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(geoid) DO UPDATE SET
				state = excluded.state,
				region = excluded.region,
				votes_dem = excluded.votes_dem,
				votes_rep = excluded.votes_rep,
				vap = excluded.vap,
				batch_id = excluded.batch_id
		`, p.GeoID, p.State, string(p.Region), p.VotesDem, p.VotesRep, p.VAP, batchID)
		if err != nil {
			return "", fmt.Errorf("ingest precinct %s: %w", p.GeoID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("ingest precincts: %w", err)
	}
	return batchID, nil
}

// IngestDemographics writes per-group population counts for one state
// under a single transaction. Re-ingesting a (state, group) pair
// replaces the previous row.
//
// Returns the batch id on success.
func (s *Store) IngestDemographics(ctx context.Context, state string, groups []records.DemographicGroup) (string, error) {
	if state == "" {
		return "", fmt.Errorf("ingest demographics: state is required")
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("ingest demographics: empty batch")
	}
	batchID := s.batchID.Generate()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("ingest demographics: %w", err)
	}
	defer tx.Rollback()

	if err := insertBatch(ctx, tx, batchID, "demographics", len(groups)); err != nil {
		return "", err
	}
	for _, g := range groups {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO demographics (state, grp, vap, batch_id)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(state, grp) DO UPDATE SET
				vap = excluded.vap,
				batch_id = excluded.batch_id
		`, state, string(g.Group), g.VAP, batchID)
		if err != nil {
			return "", fmt.Errorf("ingest demographics %s/%s: %w", state, g.Group, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("ingest demographics: %w", err)
	}
	return batchID, nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batchID, kind string, count int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO ingest_batches (id, kind, record_count, created_at)
		VALUES (?, ?, ?, ?)
	`, batchID, kind, count, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert batch %s: %w", batchID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
