package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"voyager/internal/search"
)

// stubGen routes responses by prompt content so one stub can serve the whole
// pipeline in orchestrator tests.
type stubGen struct {
	fn func(systemPrompt, userPrompt string) (string, error)
}

func (s *stubGen) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.fn(systemPrompt, userPrompt)
}

func fixedGen(response string) *stubGen {
	return &stubGen{fn: func(_, _ string) (string, error) { return response, nil }}
}

type stubSearch struct {
	results []search.Result
	err     error
}

func (s *stubSearch) Search(_ context.Context, _ string, _ int) ([]search.Result, error) {
	return s.results, s.err
}

type stubImages struct {
	urls []string
}

func (s *stubImages) Search(_ context.Context, _ string, _ int) []string {
	return s.urls
}

type stubLinks struct{}

func (stubLinks) Link(_ context.Context, name, city string) string {
	return "maps://" + name + "/" + city
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testRequest() TravelRequest {
	return TravelRequest{
		Destination: "Lisbon, Portugal",
		Duration:    5,
		Budget:      1500,
		TravelType:  "Cultural",
		Travelers:   2,
		Interests:   []string{"food", "history"},
	}
}

func TestFindPlacesEnrichment(t *testing.T) {
	gen := fixedGen(`[
		{"name": "Belem Tower", "category": "Landmark", "entry_fee": "$10", "rating": 4.7},
		{"name": "Time Out Market", "category": "Market", "entry_fee": "Free", "rating": 4.5}
	]`)
	searcher := &stubSearch{results: []search.Result{
		{Title: "Top attractions", Content: "Belem Tower is a 16th century fort", URL: "https://example.com/belem"},
	}}
	images := &stubImages{urls: []string{"https://img.example.com/1.jpg"}}

	f := NewFinder(gen, searcher, images, stubLinks{}, testLogger())
	places, err := f.FindPlaces(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("FindPlaces() error = %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("FindPlaces() returned %d places, want 2", len(places))
	}

	// Web result exists only at index 0.
	if places[0].SourceURL != "https://example.com/belem" {
		t.Errorf("places[0].SourceURL = %q, want search result URL", places[0].SourceURL)
	}
	if places[1].SourceURL != "" {
		t.Errorf("places[1].SourceURL = %q, want empty", places[1].SourceURL)
	}

	for i, p := range places {
		if p.ImageURL != "https://img.example.com/1.jpg" {
			t.Errorf("places[%d].ImageURL = %q, want stub image", i, p.ImageURL)
		}
		if !strings.HasPrefix(p.MapsLink, "maps://") {
			t.Errorf("places[%d].MapsLink = %q, want linker output", i, p.MapsLink)
		}
	}
	if places[0].ImageSearch != "Belem Tower Lisbon, Portugal tourist attraction" {
		t.Errorf("places[0].ImageSearch = %q", places[0].ImageSearch)
	}
}

func TestFindPlacesMalformedResponseYieldsEmptyList(t *testing.T) {
	f := NewFinder(fixedGen("Sorry, I cannot help with that."), &stubSearch{}, &stubImages{}, stubLinks{}, testLogger())
	places, err := f.FindPlaces(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("FindPlaces() error = %v", err)
	}
	if places == nil {
		t.Fatal("FindPlaces() returned nil, want empty list")
	}
	if len(places) != 0 {
		t.Fatalf("FindPlaces() returned %d places, want 0", len(places))
	}
}

func TestFindPlacesGenerationErrorPropagates(t *testing.T) {
	gen := &stubGen{fn: func(_, _ string) (string, error) { return "", errors.New("model unavailable") }}
	f := NewFinder(gen, &stubSearch{}, &stubImages{}, stubLinks{}, testLogger())
	if _, err := f.FindPlaces(context.Background(), testRequest()); err == nil {
		t.Fatal("FindPlaces() error = nil, want generation error")
	}
}

func TestFindRestaurantsSearchFailureDegrades(t *testing.T) {
	gen := fixedGen(`[{"name": "Cervejaria Ramiro", "cuisine": "Seafood", "budget_level": "Mid-range"}]`)
	searcher := &stubSearch{err: errors.New("tavily: unexpected status 500")}
	images := &stubImages{urls: []string{"https://img.example.com/r.jpg"}}

	f := NewFinder(gen, searcher, images, stubLinks{}, testLogger())
	restaurants, err := f.FindRestaurants(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("FindRestaurants() error = %v", err)
	}
	if len(restaurants) != 1 {
		t.Fatalf("FindRestaurants() returned %d restaurants, want 1", len(restaurants))
	}
	if restaurants[0].SourceURL != "" {
		t.Errorf("SourceURL = %q, want empty when search failed", restaurants[0].SourceURL)
	}
	if restaurants[0].ImageURL == "" || restaurants[0].MapsLink == "" {
		t.Error("enrichment should still run when search fails")
	}
}

func TestFindHotelsFencedResponse(t *testing.T) {
	gen := fixedGen("```json\n[{\"name\": \"Hotel Avenida\", \"total_estimated\": \"$500\", \"rating\": 4.2}]\n```")
	f := NewFinder(gen, &stubSearch{}, &stubImages{urls: []string{"https://img.example.com/h.jpg"}}, stubLinks{}, testLogger())

	hotels, err := f.FindHotels(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("FindHotels() error = %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Hotel Avenida" {
		t.Fatalf("FindHotels() = %+v, want the fenced hotel parsed", hotels)
	}
}
