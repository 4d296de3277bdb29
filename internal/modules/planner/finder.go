package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"voyager/internal/ai"
	"voyager/internal/media"
	"voyager/internal/search"
)

// maxWebResults caps how many search hits feed the prompt context and the
// per-index source_url enrichment.
const maxWebResults = 5

// WebSearcher is the web-search collaborator. Implementations fail soft:
// an unconfigured searcher returns no results rather than an error.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]search.Result, error)
}

// ImageFinder is the image-lookup collaborator. Never empty: a failed or
// unconfigured lookup yields a placeholder URL built from the query.
type ImageFinder interface {
	Search(ctx context.Context, query string, n int) []string
}

// MapsLinker is the map-link collaborator.
type MapsLinker interface {
	Link(ctx context.Context, name, city string) string
}

// Finder runs the three generate-then-enrich stages. The stages share one
// routine shape — web search, context block, generation, JSON decode, per-item
// enrichment — and differ only in prompts and result schema.
type Finder struct {
	gen    ai.TextGenerator
	search WebSearcher
	images ImageFinder
	links  MapsLinker
	log    zerolog.Logger
}

func NewFinder(gen ai.TextGenerator, searcher WebSearcher, images ImageFinder, links MapsLinker, log zerolog.Logger) *Finder {
	return &Finder{gen: gen, search: searcher, images: images, links: links, log: log.With().Str("component", "finder").Logger()}
}

// webContext issues the search query and folds the results into the prompt
// context block. Provider failure degrades to "No web data available".
func (f *Finder) webContext(ctx context.Context, stage, query string) ([]search.Result, string) {
	results, err := f.search.Search(ctx, query, maxWebResults)
	if err != nil {
		f.log.Warn().Err(err).Str("stage", stage).Msg("web search failed, continuing without web data")
		results = nil
	}

	if len(results) == 0 {
		return nil, "No web data available"
	}

	var lines []string
	for _, r := range results[:min(len(results), maxWebResults)] {
		lines = append(lines, fmt.Sprintf("- %s: %s", r.Title, snippet(r.Content, 200)))
	}
	return results, strings.Join(lines, "\n")
}

// snippet truncates s to at most n runes.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// generateList calls the model and decodes a JSON array of T. A malformed
// response yields an empty list, never an error: downstream stages must
// tolerate empty lists, not placeholder records.
func generateList[T any](ctx context.Context, f *Finder, stage, systemPrompt, userPrompt string) ([]T, error) {
	response, err := f.gen.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stage, err)
	}

	items, ok := ai.DecodeList[T](response)
	if !ok {
		f.log.Warn().Str("stage", stage).Str("response", snippet(ai.Strip(response), 300)).Msg("model output is not a valid JSON array")
		return []T{}, nil
	}
	return items, nil
}

// enrich resolves the auxiliary lookups for one generated item: source URL
// from the web result at the same index, an image URL, and a maps link.
// Empty sourceURL means "keep whatever the model put there".
func (f *Finder) enrich(ctx context.Context, idx int, results []search.Result, imageQuery, fallbackImageQuery, name, destination string) (sourceURL, imageURL, mapsLink string) {
	if idx < len(results) && results[idx].URL != "" {
		sourceURL = results[idx].URL
	}

	images := f.images.Search(ctx, imageQuery, 1)
	if len(images) > 0 {
		imageURL = images[0]
	} else {
		imageURL = media.PlaceholderURL(fallbackImageQuery)
	}

	mapsLink = f.links.Link(ctx, name, destination)
	return sourceURL, imageURL, mapsLink
}

const placesSystemPrompt = `You are a local travel expert with deep knowledge of tourist attractions.
Use the web search results to provide accurate, real information about places.
Return ONLY valid JSON array, nothing else.`

const placesPromptTemplate = `Based on web search results and your knowledge, create a detailed list of must-visit places in %s for a %d-day trip.

Web Search Results:
%s

Interests: %s
Budget level: $%.0f

Create a JSON array of 6-8 places with this exact structure:
[
    {
        "name": "Place name",
        "description": "2-3 sentences describing the place and why it's worth visiting",
        "category": "Museum/Landmark/Park/Market/Temple/etc",
        "location": "specific area/district in the city",
        "how_to_reach": "metro/bus/walk details with station names",
        "best_time": "morning/afternoon/evening/night",
        "duration": "1-3 hours",
        "entry_fee": "price in USD or 'Free'",
        "rating": 4.0-5.0,
        "tips": "one helpful visitor tip",
        "coordinates": "approximate lat,long if known or 'N/A'"
    }
]

Return ONLY the JSON array, no other text.`

// FindPlaces produces the attractions list for the trip, enriched per item.
func (f *Finder) FindPlaces(ctx context.Context, req TravelRequest) ([]Place, error) {
	query := strings.TrimSpace(fmt.Sprintf("top tourist attractions places to visit in %s %s",
		req.Destination, strings.Join(firstN(req.Interests, 3), " ")))
	results, webCtx := f.webContext(ctx, "places", query)

	userPrompt := fmt.Sprintf(placesPromptTemplate, req.Destination, req.Duration, webCtx,
		strings.Join(req.Interests, ", "), req.Budget)

	places, err := generateList[Place](ctx, f, "places", placesSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	for i := range places {
		p := &places[i]
		category := p.Category
		if category == "" {
			category = "landmark"
		}
		src, img, link := f.enrich(ctx, i, results,
			fmt.Sprintf("%s %s landmark", p.Name, req.Destination),
			category+",tourism",
			p.Name, req.Destination)
		if src != "" {
			p.SourceURL = src
		}
		p.ImageURL = img
		p.MapsLink = link
		p.ImageSearch = fmt.Sprintf("%s %s tourist attraction", p.Name, req.Destination)
	}
	return places, nil
}

const restaurantsSystemPrompt = `You are a food and dining expert with extensive knowledge of restaurants worldwide.
Use web search results to provide accurate information about real restaurants.
Return ONLY valid JSON array, nothing else.`

const restaurantsPromptTemplate = `Based on web search results, recommend restaurants in %s for %d travelers.

Web Search Results:
%s

Budget: $%.0f total trip budget
Preferences: %s

Create a JSON array of 6-8 restaurants across different budget ranges:
[
    {
        "name": "Restaurant name",
        "cuisine": "type of cuisine",
        "description": "what makes this place special, must-try dishes (2-3 sentences)",
        "budget_level": "Budget/Mid-range/Fine Dining",
        "avg_cost_per_person": "$10-20 or $25-50 or $60-100",
        "location": "specific area/address",
        "rating": 4.0-5.0,
        "specialties": ["dish1", "dish2", "dish3"],
        "atmosphere": "casual/romantic/family-friendly/upscale/traditional",
        "best_time": "lunch/dinner/both/breakfast",
        "reservation_needed": true or false,
        "image_search": "restaurant name + city for image search",
        "source_url": "if available from search or N/A"
    }
]

Return ONLY the JSON array, no other text.`

// FindRestaurants produces the dining list for the trip, enriched per item.
func (f *Finder) FindRestaurants(ctx context.Context, req TravelRequest) ([]Restaurant, error) {
	query := fmt.Sprintf("best restaurants to eat in %s local cuisine food", req.Destination)
	results, webCtx := f.webContext(ctx, "restaurants", query)

	userPrompt := fmt.Sprintf(restaurantsPromptTemplate, req.Destination, req.Travelers, webCtx,
		req.Budget, strings.Join(req.Interests, ", "))

	restaurants, err := generateList[Restaurant](ctx, f, "restaurants", restaurantsSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	for i := range restaurants {
		r := &restaurants[i]
		cuisine := r.Cuisine
		if cuisine == "" {
			cuisine = "food"
		}
		src, img, link := f.enrich(ctx, i, results,
			fmt.Sprintf("%s %s restaurant food", r.Name, req.Destination),
			cuisine+",restaurant",
			r.Name, req.Destination)
		if src != "" {
			r.SourceURL = src
		}
		r.ImageURL = img
		r.MapsLink = link
	}
	return restaurants, nil
}

const hotelsSystemPrompt = `You are a hotel and accommodation expert with knowledge of properties worldwide.
Use web search results to recommend real hotels with accurate information.
Return ONLY valid JSON array, nothing else.`

const hotelsPromptTemplate = `Based on web search results, recommend hotels in %s for %d travelers, %d days.

Web Search Results:
%s

Total Budget: $%.0f
Travel Type: %s

Create a JSON array of 5-6 hotels across different budget ranges:
[
    {
        "name": "Hotel name",
        "category": "Budget/3-Star/4-Star/5-Star/Boutique",
        "description": "what makes this hotel special, amenities, unique features (2-3 sentences)",
        "location": "neighborhood/area with landmarks",
        "price_per_night": "$50-100 or $150-250 etc",
        "total_estimated": "$350-700 for %d nights",
        "rating": 4.0-5.0,
        "amenities": ["WiFi", "Pool", "Gym", "Spa", "Restaurant", "Parking", etc],
        "room_type": "Standard Double/Deluxe Suite/Family Room/etc",
        "proximity": "near main attractions/metro station/airport",
        "booking_tip": "best time to book or platform recommendation",
        "image_search": "hotel name + city",
        "source_url": "if available or N/A"
    }
]

Return ONLY the JSON array, no other text.`

// FindHotels produces the lodging list for the trip, enriched per item.
func (f *Finder) FindHotels(ctx context.Context, req TravelRequest) ([]Hotel, error) {
	query := fmt.Sprintf("best hotels to stay in %s accommodation reviews", req.Destination)
	results, webCtx := f.webContext(ctx, "hotels", query)

	travelType := req.TravelType
	if travelType == "" {
		travelType = "General"
	}
	userPrompt := fmt.Sprintf(hotelsPromptTemplate, req.Destination, req.Travelers, req.Duration,
		webCtx, req.Budget, travelType, req.Duration)

	hotels, err := generateList[Hotel](ctx, f, "hotels", hotelsSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	for i := range hotels {
		h := &hotels[i]
		src, img, link := f.enrich(ctx, i, results,
			fmt.Sprintf("%s %s hotel", h.Name, req.Destination),
			"hotel,luxury,accommodation",
			h.Name, req.Destination)
		if src != "" {
			h.SourceURL = src
		}
		h.ImageURL = img
		h.MapsLink = link
	}
	return hotels, nil
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
