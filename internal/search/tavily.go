// README: Tavily web-search client; degrades to empty results when unconfigured or failing.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.tavily.com"

// Result is one web-search hit in provider order.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Client talks to the Tavily search API.
// A nil *Client is valid and always returns no results, which lets callers
// skip the "is search configured" branch entirely.
type Client struct {
	base string
	key  string
	hc   *http.Client
}

// New returns a Client, or nil when no API key is configured.
func New(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		base: defaultBaseURL,
		key:  apiKey,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Search runs one query and returns at most maxResults ordered results.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if c == nil {
		return nil, nil
	}

	body, err := json.Marshal(searchRequest{APIKey: c.key, Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, fmt.Errorf("tavily: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily: unexpected status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("tavily: decode response: %w", err)
	}

	if len(out.Results) > maxResults {
		out.Results = out.Results[:maxResults]
	}
	return out.Results, nil
}
