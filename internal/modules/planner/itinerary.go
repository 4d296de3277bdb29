package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"voyager/internal/ai"
)

const itinerarySystemPrompt = `You are an expert itinerary planner creating realistic, well-paced daily schedules.
Use the provided places and restaurants to create a cohesive plan.
Return ONLY valid JSON array, nothing else.`

const itineraryPromptTemplate = `Create a detailed day-by-day itinerary for %d days in %s.

Available Places to Visit:
%s

Available Restaurants:
%s

Travelers: %d people
Interests: %s
Budget: $%.0f

Create a JSON array with daily plans (make sure activities are realistic and well-timed):
[
    {
        "day": 1,
        "title": "Arrival & City Introduction / Cultural Exploration / etc",
        "activities": [
            {
                "time": "9:00 AM",
                "activity": "activity name from places list or new activity",
                "description": "what to do and see",
                "location": "specific location",
                "duration": "1-3 hours",
                "cost": "$10-50"
            }
        ],
        "meals": {
            "breakfast": "restaurant name from list or suggestion",
            "lunch": "restaurant name from list or suggestion",
            "dinner": "restaurant name from list or suggestion"
        },
        "estimated_cost": "$100-300",
        "tips": "important tips for the day (transport, dress code, etc)"
    }
]

Include 3-5 activities per day and one element per day of the trip.
Return ONLY the JSON array, no other text.`

// ItineraryBuilder generates the day-by-day schedule from the accumulated
// places and restaurants lists.
type ItineraryBuilder struct {
	gen ai.TextGenerator
	log zerolog.Logger
}

func NewItineraryBuilder(gen ai.TextGenerator, log zerolog.Logger) *ItineraryBuilder {
	return &ItineraryBuilder{gen: gen, log: log.With().Str("stage", "itinerary").Logger()}
}

// summaryLimit bounds how many places/restaurants feed the prompt context.
const summaryLimit = 10

func placesSummary(places []Place) string {
	if len(places) == 0 {
		return "No places data"
	}
	var lines []string
	for _, p := range places[:min(len(places), summaryLimit)] {
		lines = append(lines, fmt.Sprintf("- %s: %s - %s - %s", p.Name, p.Category, p.Location, p.EntryFee))
	}
	return strings.Join(lines, "\n")
}

func restaurantsSummary(restaurants []Restaurant) string {
	if len(restaurants) == 0 {
		return "No restaurants data"
	}
	var lines []string
	for _, r := range restaurants[:min(len(restaurants), summaryLimit)] {
		lines = append(lines, fmt.Sprintf("- %s: %s - %s", r.Name, r.Cuisine, r.BudgetLevel))
	}
	return strings.Join(lines, "\n")
}

// Build creates one ItineraryDay per day of the request's duration.
// A malformed model response yields an empty list, never an error.
func (b *ItineraryBuilder) Build(ctx context.Context, req TravelRequest, places []Place, restaurants []Restaurant) ([]ItineraryDay, error) {
	userPrompt := fmt.Sprintf(itineraryPromptTemplate,
		req.Duration, req.Destination,
		placesSummary(places), restaurantsSummary(restaurants),
		req.Travelers, strings.Join(req.Interests, ", "), req.Budget)

	response, err := b.gen.Generate(ctx, itinerarySystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("itinerary: %w", err)
	}

	days, ok := ai.DecodeList[ItineraryDay](response)
	if !ok {
		b.log.Warn().Str("response", snippet(ai.Strip(response), 300)).Msg("model output is not a valid JSON array")
		return []ItineraryDay{}, nil
	}
	return days, nil
}
