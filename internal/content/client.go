package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Client reads content from the site server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

type contentPayload struct {
	Content map[string]string `json:"content"`
}

// Fetch returns the site's content mapping.
func (c Client) Fetch(ctx context.Context) (map[string]string, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/content", nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch content: status %d", resp.StatusCode)
	}

	var payload contentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode content response: %w", err)
	}
	return payload.Content, nil
}

// Load fetches content once and parses it. Any failure falls back to the
// defaults; the arcade never waits on a second attempt.
func Load(ctx context.Context, c Client) Settings {
	values, err := c.Fetch(ctx)
	if err != nil {
		log.Printf("content: using defaults: %v", err)
		return Parse(nil)
	}
	return Parse(values)
}
