package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"googlemaps.github.io/maps"
)

// SearchURL deterministically constructs a search-style Google Maps link for a
// place inside a city. Pure string function, no network call.
func SearchURL(name, city string) string {
	query := strings.Trim(fmt.Sprintf("%s,%s", name, city), ",")
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

// Linker resolves place names to Google Maps links. With an API key it runs a
// Places text search and links the exact place_id; without one, or whenever the
// lookup fails, it falls back to SearchURL.
type Linker struct {
	client *maps.Client
}

// NewLinker creates a Linker. An empty API key yields a link-only Linker that
// never touches the network.
func NewLinker(apiKey string) (*Linker, error) {
	if apiKey == "" {
		return &Linker{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Linker{client: client}, nil
}

// Link returns the best available Google Maps URL for (name, city).
func (l *Linker) Link(ctx context.Context, name, city string) string {
	if l == nil || l.client == nil {
		return SearchURL(name, city)
	}

	r := &maps.TextSearchRequest{
		Query: strings.Trim(fmt.Sprintf("%s, %s", name, city), ", "),
	}

	resp, err := l.client.TextSearch(ctx, r)
	if err != nil || len(resp.Results) == 0 {
		return SearchURL(name, city)
	}

	placeID := resp.Results[0].PlaceID
	if placeID == "" {
		return SearchURL(name, city)
	}
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}
