package store

import (
	"context"
	"fmt"
	"time"

	"github.com/veksi/kuntadash/internal/series"
)

// Run identifies one archived (fetch run, series) pair.
type Run struct {
	ID        string    `json:"id"`
	SeriesID  string    `json:"series_id"`
	FetchedAt time.Time `json:"fetched_at"`
	RowCount  int       `json:"row_count"`
}

// WriteRun archives one series of a fetch run atomically: the run record
// and all its rows in a single transaction.
//
// Uses ON CONFLICT DO NOTHING for idempotency: re-archiving the same
// (run, series) is silently ignored, so a retried CLI invocation never
// duplicates observations.
func (s *Store) WriteRun(ctx context.Context, run Run, rows []series.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, series_id, fetched_at, row_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, run.ID, run.SeriesID, run.FetchedAt.UTC().Format(time.RFC3339), len(rows))
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	for _, r := range rows {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO observations (run_id, series_id, year, region, value)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, run.ID, run.SeriesID, r.Year, r.Region, r.Value)
		if err != nil {
			return fmt.Errorf("write observation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
