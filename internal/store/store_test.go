package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veksi/kuntadash/internal/series"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

var archiveRows = []series.Row{
	{Year: 2020, Region: "Halsua", Value: 1112},
	{Year: 2020, Region: "Kaustinen", Value: 3521},
	{Year: 2021, Region: "Halsua", Value: 1098},
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestWriteRun_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-001", SeriesID: "population", FetchedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, s.WriteRun(ctx, run, archiveRows))

	got, err := s.LatestSeries(ctx, "population")
	require.NoError(t, err)
	assert.Equal(t, archiveRows, got)
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-001", SeriesID: "population", FetchedAt: time.Now()}
	require.NoError(t, s.WriteRun(ctx, run, archiveRows))
	require.NoError(t, s.WriteRun(ctx, run, archiveRows))

	got, err := s.LatestSeries(ctx, "population")
	require.NoError(t, err)
	assert.Len(t, got, len(archiveRows), "re-archiving must not duplicate observations")
}

func TestLatestSeries_PicksNewestRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	old := []series.Row{{Year: 2020, Region: "Halsua", Value: 1}}
	fresh := []series.Row{{Year: 2020, Region: "Halsua", Value: 2}}

	// Run IDs are UUIDv7 in production; any lexically increasing IDs work.
	require.NoError(t, s.WriteRun(ctx, Run{ID: "run-001", SeriesID: "population", FetchedAt: time.Now()}, old))
	require.NoError(t, s.WriteRun(ctx, Run{ID: "run-002", SeriesID: "population", FetchedAt: time.Now()}, fresh))

	got, err := s.LatestSeries(ctx, "population")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestLatestSeries_EmptyArchive(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LatestSeries(context.Background(), "population")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLatestSeries_EmptySeriesStaysEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A run with zero rows is a legitimate archive entry: the dataset had
	// no matching data, which is distinct from never having fetched.
	run := Run{ID: "run-001", SeriesID: "employment", FetchedAt: time.Now()}
	require.NoError(t, s.WriteRun(ctx, run, nil))

	got, err := s.LatestSeries(ctx, "employment")
	require.NoError(t, err)
	assert.Empty(t, got)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 0, runs[0].RowCount)
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.WriteRun(ctx, Run{ID: "run-001", SeriesID: "population", FetchedAt: at}, archiveRows))
	require.NoError(t, s.WriteRun(ctx, Run{ID: "run-002", SeriesID: "population", FetchedAt: at.Add(time.Hour)}, archiveRows))
	require.NoError(t, s.WriteRun(ctx, Run{ID: "run-002", SeriesID: "employment", FetchedAt: at.Add(time.Hour)}, nil))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "run-002", runs[0].ID)
	assert.Equal(t, "employment", runs[0].SeriesID)
	assert.Equal(t, "run-002", runs[1].ID)
	assert.Equal(t, "population", runs[1].SeriesID)
	assert.Equal(t, "run-001", runs[2].ID)
	assert.Equal(t, at, runs[2].FetchedAt)
	assert.Equal(t, len(archiveRows), runs[2].RowCount)
}
