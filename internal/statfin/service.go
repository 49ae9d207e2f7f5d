package statfin

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veksi/kuntadash/internal/config"
	"github.com/veksi/kuntadash/internal/cube"
	"github.com/veksi/kuntadash/internal/plan"
	"github.com/veksi/kuntadash/internal/series"
)

// RunIDGenerator produces identifiers for fetch runs.
// Interface allows tests to use fixed IDs for deterministic output.
type RunIDGenerator interface {
	NewRunID() string
}

// UUIDv7Generator generates time-ordered UUIDs, so archived runs sort
// chronologically by ID.
type UUIDv7Generator struct{}

// NewRunID implements RunIDGenerator.
func (UUIDv7Generator) NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Service runs the full pipeline for the configured dashboard series.
type Service struct {
	client *Client
	cfg    config.Config
	log    *slog.Logger
	runIDs RunIDGenerator
}

// Snapshot is the outcome of one fetch run: every configured series,
// each aggregated and sorted. Series that could not be fetched or whose
// concept did not resolve are present and empty; absence of data is
// visible, not invented as zeros.
type Snapshot struct {
	RunID     string                  `json:"run_id"`
	FetchedAt time.Time               `json:"fetched_at"`
	Series    map[string][]series.Row `json:"series"`
}

// NewService wires a service. A nil generator defaults to UUIDv7 run IDs;
// a nil logger discards.
func NewService(client *Client, cfg config.Config, log *slog.Logger, runIDs RunIDGenerator) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if runIDs == nil {
		runIDs = UUIDv7Generator{}
	}
	return &Service{client: client, cfg: cfg, log: log, runIDs: runIDs}
}

// FetchSeries runs the pipeline for one configured series: metadata,
// plan, fetch, extract, aggregate. The configured fetch timeout bounds
// the whole call.
//
// An unresolved concept returns an empty series and no error; that a
// dataset lacks a concept is a defined outcome. Network and decode
// failures return errors for the caller to handle.
func (s *Service) FetchSeries(ctx context.Context, cs config.Series) ([]series.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout.Std())
	defer cancel()

	meta, err := s.client.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	p, err := plan.Build(meta, cs.Selector, plan.Params{
		AreaDim:    s.cfg.AreaDim,
		YearDim:    s.cfg.YearDim,
		MetricHint: s.cfg.MetricHint,
		Regions:    s.cfg.RegionCodes(),
		Years:      s.cfg.TargetYears,
	})
	if errors.Is(err, plan.ErrNoMetric) {
		s.log.Info("concept not present in dataset", "series", cs.ID, "keyword", cs.Selector.Keyword)
		return []series.Row{}, nil
	}
	if err != nil {
		return nil, err
	}

	c, err := s.client.Fetch(ctx, p.Query)
	if err != nil {
		return nil, err
	}

	var filter *cube.MetricFilter
	if p.MetricDim != "" {
		filter = &cube.MetricFilter{Dim: p.MetricDim, Code: p.MetricCode}
	}

	rows := series.Aggregate(cube.Extract(c, s.cfg.AreaDim, s.cfg.YearDim, filter, s.cfg.RegionNames()))
	return rows, nil
}

// FetchAll fetches every configured series concurrently, one goroutine
// per series, each with its own timeout via FetchSeries. This is the
// dashboard boundary: per-series failures are logged and degrade to an
// empty series so one broken concept never blanks the whole page.
func (s *Service) FetchAll(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		RunID:     s.runIDs.NewRunID(),
		FetchedAt: time.Now().UTC(),
		Series:    make(map[string][]series.Row, len(s.cfg.Series)),
	}

	results := make([][]series.Row, len(s.cfg.Series))

	var wg sync.WaitGroup
	for i, cs := range s.cfg.Series {
		wg.Add(1)
		go func(i int, cs config.Series) {
			defer wg.Done()
			rows, err := s.FetchSeries(ctx, cs)
			if err != nil {
				s.log.Error("series fetch failed", "run", snap.RunID, "series", cs.ID, "error", err)
				rows = []series.Row{}
			}
			results[i] = rows
		}(i, cs)
	}
	wg.Wait()

	for i, cs := range s.cfg.Series {
		snap.Series[cs.ID] = results[i]
	}

	s.log.Info("fetch run complete", "run", snap.RunID, "series", len(snap.Series))
	return snap
}
