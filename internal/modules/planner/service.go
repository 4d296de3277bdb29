// README: Orchestrator; runs the five pipeline stages in fixed order over one PlanState.
package planner

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrEmptyInput is returned when Plan is called with blank user input.
// The HTTP boundary rejects this earlier; the check here is the last line.
var ErrEmptyInput = errors.New("user input is required")

// Service drives the planning pipeline: extract, places, restaurants, hotels,
// itinerary + budget. Stages run strictly in order on one PlanState; a stage
// failure is absorbed locally (logged, state field left empty) so every later
// stage still runs with whatever state is available.
type Service struct {
	extractor *Extractor
	finder    *Finder
	itinerary *ItineraryBuilder
	cache     *PlanCache
	log       zerolog.Logger
}

func NewService(extractor *Extractor, finder *Finder, itinerary *ItineraryBuilder, cache *PlanCache, log zerolog.Logger) *Service {
	return &Service{
		extractor: extractor,
		finder:    finder,
		itinerary: itinerary,
		cache:     cache,
		log:       log.With().Str("component", "planner").Logger(),
	}
}

// Plan executes the full pipeline for one free-text request.
// The returned PlanState always has non-nil list fields, even when every
// upstream call failed; extraction failures are surfaced via PlanState.Error.
func (s *Service) Plan(ctx context.Context, userInput string) (*PlanState, error) {
	if userInput == "" {
		return nil, ErrEmptyInput
	}

	if cached, ok := s.cache.Get(ctx, userInput); ok {
		s.log.Info().Msg("returning cached plan")
		return cached, nil
	}

	state := NewPlanState()

	s.log.Info().Msg("extracting travel details")
	req, err := s.extractor.Extract(ctx, userInput)
	if err != nil {
		s.log.Error().Err(err).Msg("extraction failed")
		state.Error = err.Error()
	} else {
		state.TravelDetails = req
		s.log.Info().Str("destination", req.Destination).Int("duration", req.Duration).Msg("extracted travel details")
	}

	s.log.Info().Msg("finding places to visit")
	if places, err := s.finder.FindPlaces(ctx, state.TravelDetails); err != nil {
		s.log.Error().Err(err).Msg("places stage failed")
	} else if places != nil {
		state.Places = places
		s.log.Info().Int("count", len(places)).Msg("found places")
	}

	s.log.Info().Msg("finding restaurants")
	if restaurants, err := s.finder.FindRestaurants(ctx, state.TravelDetails); err != nil {
		s.log.Error().Err(err).Msg("restaurants stage failed")
	} else if restaurants != nil {
		state.Restaurants = restaurants
		s.log.Info().Int("count", len(restaurants)).Msg("found restaurants")
	}

	s.log.Info().Msg("finding hotels")
	if hotels, err := s.finder.FindHotels(ctx, state.TravelDetails); err != nil {
		s.log.Error().Err(err).Msg("hotels stage failed")
	} else if hotels != nil {
		state.Hotels = hotels
		s.log.Info().Int("count", len(hotels)).Msg("found hotels")
	}

	s.log.Info().Msg("creating day-by-day itinerary")
	if days, err := s.itinerary.Build(ctx, state.TravelDetails, state.Places, state.Restaurants); err != nil {
		s.log.Error().Err(err).Msg("itinerary stage failed")
	} else {
		if days != nil {
			state.Itinerary = days
		}
		state.BudgetBreakdown = CalculateBudget(state)
		s.log.Info().Int("days", len(state.Itinerary)).Msg("created itinerary and budget breakdown")
	}

	if state.Error == "" {
		s.cache.Set(ctx, userInput, state)
	}
	return state, nil
}
