package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
)

// Client fetches wellness entries from configured provider endpoints.
// Providers without a configured URL report remote=false so the caller
// can fall back to its bundled sample data.
type Client struct {
	urls       map[string]string
	httpClient *http.Client
}

// NewClient builds a client over the provider URL map from the config.
func NewClient(urls map[string]string) *Client {
	return &Client{
		urls: urls,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch pulls entries from the provider's endpoint. The endpoint may
// return either a bare JSON array of entries or an object with an
// "entries" field.
func (c *Client) Fetch(ctx context.Context, provider string) ([]wellness.Metric, bool, error) {
	endpoint, ok := c.urls[provider]
	if !ok || endpoint == "" {
		return nil, false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, true, fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, true, fmt.Errorf("provider request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read provider response: %w", err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, true, fmt.Errorf("decode provider response: %w", err)
	}
	return entries, true, nil
}

func decodeEntries(body []byte) ([]wellness.Metric, error) {
	var entries []wellness.Metric
	if err := json.Unmarshal(body, &entries); err == nil {
		return entries, nil
	}

	var wrapped struct {
		Entries []wellness.Metric `json:"entries"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Entries == nil {
		return nil, fmt.Errorf("payload has no entries field")
	}
	return wrapped.Entries, nil
}

var _ wellness.ProviderClient = (*Client)(nil)
