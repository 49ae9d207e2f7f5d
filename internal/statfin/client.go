package statfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/veksi/kuntadash/internal/cube"
	"github.com/veksi/kuntadash/internal/plan"
)

// Client talks to one PxWeb table endpoint. A GET returns the table's
// dimension metadata; a POST with a selection query returns the data
// slice as a JSON-stat cube.
//
// The client makes a single attempt per call. Retry and backoff policy is
// the caller's concern, and deadlines arrive through the context.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for the given table URL.
func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{}}
}

// Metadata fetches the table's dimension metadata.
func (c *Client) Metadata(ctx context.Context) (plan.Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return plan.Metadata{}, fmt.Errorf("metadata request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return plan.Metadata{}, fmt.Errorf("metadata fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return plan.Metadata{}, fmt.Errorf("metadata fetch: unexpected status %s", resp.Status)
	}

	var meta plan.Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return plan.Metadata{}, fmt.Errorf("metadata decode: %w", err)
	}
	return meta, nil
}

// Fetch posts a selection query and decodes the JSON-stat response into a
// validated cube.
func (c *Client) Fetch(ctx context.Context, q plan.Query) (*cube.Cube, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("data request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("data fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data fetch: unexpected status %s", resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("data read: %w", err)
	}

	return cube.DecodeJSON(payload)
}
