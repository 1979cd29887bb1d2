// Package httpclient provides a minimal HTTP client for fetching data from
// upstream retail sources.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout is applied when a zero timeout is requested
	DefaultTimeout = 30 * time.Second

	// userAgent identifies this service to upstream endpoints
	userAgent = "dealvoy-registry/1.0"

	// maxResponseSize caps response bodies at 10 MiB to avoid unbounded reads
	maxResponseSize = 10 * 1024 * 1024
)

// Client is an interface for fetching data over HTTP
type Client interface {
	// Get performs a GET request and returns the response body
	Get(ctx context.Context, url string) ([]byte, error)
}

// defaultClient is the default implementation of Client
type defaultClient struct {
	client *http.Client
}

var _ Client = (*defaultClient)(nil)

// NewDefaultClient creates a new HTTP client with the given timeout.
// A zero timeout falls back to DefaultTimeout.
func NewDefaultClient(timeout time.Duration) Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &defaultClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request against the given URL
func (c *defaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewHTTPError(resp.StatusCode, url, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
