// Package fetch retrieves upstream pages and slices them into plain-text
// fragments for the collectors.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harukisawai/godchecker/config"
)

// Client is the HTTP page client shared by all collectors. Every request
// carries the configured User-Agent and is bounded by the configured
// timeout; failures are returned as-is, never retried.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a page client from the fetch configuration.
func New(cfg config.FetchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		userAgent:  cfg.UserAgent,
	}
}

// Get fetches url and returns the page body as text.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return string(body), nil
}
