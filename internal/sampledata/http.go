package sampledata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/jobpulse/internal/domain/types"
)

// Verification errors.
var (
	ErrServiceUnhealthy = errors.New("service health check failed")
	ErrTotalMismatch    = errors.New("dashboard total does not match generated rows")
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request bound to ctx.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// checkServiceHealth verifies the dashboard is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, baseURL string) error {
	resp, err := client.Get(ctx, baseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	_, _ = readResponseBody(resp)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrServiceUnhealthy, resp.StatusCode)
	}
	return nil
}

// fetchSummary fetches the unfiltered summary panel.
func fetchSummary(ctx context.Context, client *HTTPClient, baseURL string) (types.Summary, error) {
	var summary types.Summary
	resp, err := client.Get(ctx, baseURL+"/api/summary")
	if err != nil {
		return summary, fmt.Errorf("failed to fetch summary: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return summary, fmt.Errorf("failed to read summary: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return summary, fmt.Errorf("summary request failed with status %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &summary); err != nil {
		return summary, fmt.Errorf("failed to decode summary: %w", err)
	}
	return summary, nil
}

// Verify checks that a dashboard serving the generated file reports the
// expected number of applications.
func Verify(ctx context.Context, baseURL string, timeout time.Duration, want int) (types.Summary, error) {
	client := newHTTPClient(timeout)
	if err := checkServiceHealth(ctx, client, baseURL); err != nil {
		return types.Summary{}, err
	}
	summary, err := fetchSummary(ctx, client, baseURL)
	if err != nil {
		return summary, err
	}
	if summary.Total != want {
		return summary, fmt.Errorf("%w: got %d, want %d", ErrTotalMismatch, summary.Total, want)
	}
	return summary, nil
}
