// README: Pexels image lookup with a deterministic Unsplash placeholder fallback.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const pexelsSearchURL = "https://api.pexels.com/v1/search"

// Finder looks up photo URLs for a free-text query.
// Every failure mode (no key, provider error, empty result) falls back to a
// placeholder URL derived from the query, so Search never returns an empty list.
type Finder struct {
	base string
	key  string
	hc   *http.Client
}

// NewFinder returns a Finder. An empty API key is fine: lookups then resolve
// straight to placeholder URLs.
func NewFinder(apiKey string) *Finder {
	return &Finder{
		base: pexelsSearchURL,
		key:  apiKey,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// PlaceholderURL builds the deterministic fallback image URL for a query.
func PlaceholderURL(query string) string {
	return "https://source.unsplash.com/800x600/?" + url.QueryEscape(query)
}

type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Search returns up to n image URLs for the query, always at least one.
func (f *Finder) Search(ctx context.Context, query string, n int) []string {
	if f == nil || f.key == "" {
		return []string{PlaceholderURL(query)}
	}

	u := fmt.Sprintf("%s?query=%s&per_page=%d&orientation=landscape", f.base, url.QueryEscape(query), n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return []string{PlaceholderURL(query)}
	}
	req.Header.Set("Authorization", f.key)

	resp, err := f.hc.Do(req)
	if err != nil {
		return []string{PlaceholderURL(query)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{PlaceholderURL(query)}
	}

	var out pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return []string{PlaceholderURL(query)}
	}

	var images []string
	for _, photo := range out.Photos {
		if photo.Src.Large != "" {
			images = append(images, photo.Src.Large)
		}
	}
	if len(images) == 0 {
		return []string{PlaceholderURL(query)}
	}
	return images
}
