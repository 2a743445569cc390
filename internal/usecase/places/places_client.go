// Package places proxies the public geocoding autocomplete the location
// field uses and hosts the debounced dispatcher that throttles it.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Place is one ranked autocomplete suggestion.
type Place struct {
	Name string `json:"name"`
}

// Client queries a Nominatim-style geocoding endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Search returns ranked place names for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	u := fmt.Sprintf("%s/search?%s", c.baseURL, url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"5"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "ableworks-backend")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode service returned %d", resp.StatusCode)
	}

	var rows []struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	out := make([]Place, 0, len(rows))
	for _, r := range rows {
		out = append(out, Place{Name: r.DisplayName})
	}
	return out, nil
}
