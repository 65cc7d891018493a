package fio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// REST endpoints serving the full dataset per kind.
var endpoints = map[string]string{
	"buildings": "/building/allbuildings",
	"recipes":   "/recipes/allrecipes",
	"materials": "/material/allmaterials",
	"exchange":  "/exchange/full",
	"planets":   "/planet/allplanets/full",
}

// Client downloads dataset exports from the FIO REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a FIO API client for the given base URL. A zero
// timeout falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Fetch streams the full export for a dataset kind. The caller owns
// the returned body and must close it.
func (c *Client) Fetch(ctx context.Context, kind string) (io.ReadCloser, error) {
	path, ok := endpoints[kind]
	if !ok {
		return nil, fmt.Errorf("unknown dataset kind %q", kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s export: %w", kind, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s export: unexpected status %d", kind, resp.StatusCode)
	}
	return resp.Body, nil
}
