package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/veksi/kuntadash/internal/series"
)

// LatestSeries returns the rows of the most recent archived run for the
// given series, in the (year, region) order the aggregator wrote them.
// A series with no archived runs returns an empty, non-nil slice.
func (s *Store) LatestSeries(ctx context.Context, seriesID string) ([]series.Row, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM runs WHERE series_id = ? ORDER BY id DESC LIMIT 1
	`, seriesID).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return []series.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest series: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT year, region, value
		FROM observations
		WHERE run_id = ? AND series_id = ?
		ORDER BY year, region
	`, runID, seriesID)
	if err != nil {
		return nil, fmt.Errorf("latest series: %w", err)
	}
	defer rows.Close()

	out := []series.Row{}
	for rows.Next() {
		var r series.Row
		if err := rows.Scan(&r.Year, &r.Region, &r.Value); err != nil {
			return nil, fmt.Errorf("latest series: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("latest series: %w", err)
	}
	return out, nil
}

// ListRuns returns every archived (run, series) record, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, series_id, fetched_at, row_count
		FROM runs
		ORDER BY id DESC, series_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var r Run
		var fetchedAt string
		if err := rows.Scan(&r.ID, &r.SeriesID, &fetchedAt, &r.RowCount); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		t, err := time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: bad timestamp %q: %w", fetchedAt, err)
		}
		r.FetchedAt = t
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}
