// Package api exposes the engine's output to the dashboard frontend as
// JSON. It serves series rows and region metadata only; charting and
// layout live entirely in the frontend.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/veksi/kuntadash/internal/config"
	"github.com/veksi/kuntadash/internal/series"
)

// SeriesSource supplies the rows for one configured series. Implemented
// by the live statfin service and by the archive store, so the server can
// run against either.
type SeriesSource interface {
	Series(ctx context.Context, id string) ([]series.Row, error)
}

// Handler serves the dashboard API.
type Handler struct {
	cfg config.Config
	src SeriesSource
}

// NewHandler creates a handler backed by the given source.
func NewHandler(cfg config.Config, src SeriesSource) *Handler {
	return &Handler{cfg: cfg, src: src}
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes attaches the API routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/meta/regions", h.GetRegions)
	api.GET("/meta/series", h.GetSeries)
	api.GET("/series/:id", h.GetSeriesRows)
}

// GetHealth reports liveness.
func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetRegions returns the region allow-list with display names and chart
// colors, in configuration order.
func (h *Handler) GetRegions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cfg.Regions)
}

// seriesInfo is the series catalog entry the frontend renders tabs from.
type seriesInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// GetSeries returns the configured series catalog.
func (h *Handler) GetSeries(c echo.Context) error {
	out := make([]seriesInfo, len(h.cfg.Series))
	for i, s := range h.cfg.Series {
		out[i] = seriesInfo{ID: s.ID, Title: s.Title}
	}
	return c.JSON(http.StatusOK, out)
}

// GetSeriesRows returns one series as sorted rows. An unknown id is 404;
// a known series with no data is 200 with an empty list. The two cases
// are distinct and the frontend renders them differently.
func (h *Handler) GetSeriesRows(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.cfg.SeriesByID(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown series: "+id)
	}

	rows, err := h.src.Series(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "series unavailable: "+id)
	}
	if rows == nil {
		rows = []series.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}
