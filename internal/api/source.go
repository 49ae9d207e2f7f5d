package api

import (
	"context"
	"fmt"

	"github.com/veksi/kuntadash/internal/config"
	"github.com/veksi/kuntadash/internal/series"
	"github.com/veksi/kuntadash/internal/statfin"
	"github.com/veksi/kuntadash/internal/store"
)

// LiveSource fetches series on demand from the statistics API.
type LiveSource struct {
	cfg config.Config
	svc *statfin.Service
}

// NewLiveSource wires a live source.
func NewLiveSource(cfg config.Config, svc *statfin.Service) *LiveSource {
	return &LiveSource{cfg: cfg, svc: svc}
}

// Series implements SeriesSource.
func (s *LiveSource) Series(ctx context.Context, id string) ([]series.Row, error) {
	cs, ok := s.cfg.SeriesByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown series %q", id)
	}
	return s.svc.FetchSeries(ctx, cs)
}

// ArchiveSource serves the latest archived run from the store.
type ArchiveSource struct {
	st *store.Store
}

// NewArchiveSource wires an archive source.
func NewArchiveSource(st *store.Store) *ArchiveSource {
	return &ArchiveSource{st: st}
}

// Series implements SeriesSource.
func (s *ArchiveSource) Series(ctx context.Context, id string) ([]series.Row, error) {
	return s.st.LatestSeries(ctx, id)
}
