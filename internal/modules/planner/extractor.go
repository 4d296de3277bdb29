package planner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"voyager/internal/ai"
)

const extractionSystemPrompt = "You are a travel data extraction expert. Extract travel information and return ONLY valid JSON, nothing else. If information is missing, make reasonable estimates based on context."

const extractionPromptTemplate = `Extract the following information from the user's travel request:

User_Request: %q

Return a JSON object with:

{
    "destination": "city, country",
    "duration": number of days (estimate if not specified, default 7),
    "budget": estimated budget in USD (estimate if not specified, default 2000),
    "travel_type": "Adventure/Cultural/Relaxation/Family/Romantic/Business/Solo",
    "travelers": number of people (default 2),
    "interests": ["interest1", "interest2", ...],
    "overview": "brief 2-3 sentence destination overview with highlights"
}

Return ONLY the JSON object, no other text.`

// Extractor turns free-text travel requests into TravelRequest records.
type Extractor struct {
	gen ai.TextGenerator
	log zerolog.Logger
}

func NewExtractor(gen ai.TextGenerator, log zerolog.Logger) *Extractor {
	return &Extractor{gen: gen, log: log.With().Str("stage", "extract").Logger()}
}

// fallbackTravelRequest is returned when the model's response is not valid
// JSON. The pipeline must never abort on malformed model output.
func fallbackTravelRequest() TravelRequest {
	return TravelRequest{
		Destination: "unknown",
		Duration:    7,
		Budget:      2000,
		TravelType:  "General",
		Travelers:   2,
		Interests:   []string{"sightseeing"},
		Overview:    "Exciting destination to explore",
	}
}

// Extract calls the text-generation service and parses its JSON response.
// Only a failed generation call returns an error; a response that cannot be
// parsed yields the documented fallback record instead.
func (e *Extractor) Extract(ctx context.Context, userInput string) (TravelRequest, error) {
	userPrompt := fmt.Sprintf(extractionPromptTemplate, userInput)

	response, err := e.gen.Generate(ctx, extractionSystemPrompt, userPrompt)
	if err != nil {
		return TravelRequest{Interests: []string{}}, fmt.Errorf("extraction: %w", err)
	}

	var req TravelRequest
	if !ai.DecodeObject(response, &req) {
		e.log.Warn().Str("response", ai.Strip(response)).Msg("model output is not valid JSON, using fallback travel request")
		return fallbackTravelRequest(), nil
	}

	req.applyDefaults()
	return req, nil
}
