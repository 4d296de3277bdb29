// README: Planner entities; one struct per pipeline stage output.
package planner

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TravelRequest is the structured record extracted from the user's free text.
// Immutable after extraction; every later stage reads from it.
type TravelRequest struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      float64  `json:"budget"`
	TravelType  string   `json:"travel_type"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	Overview    string   `json:"overview"`
}

// UnmarshalJSON tolerates the numeric fields arriving as JSON strings
// ("duration": "5", "budget": "2000") — models do this often enough that
// strict decoding would trip the extraction fallback for usable responses.
func (r *TravelRequest) UnmarshalJSON(data []byte) error {
	type alias struct {
		Destination string          `json:"destination"`
		Duration    json.RawMessage `json:"duration"`
		Budget      json.RawMessage `json:"budget"`
		TravelType  string          `json:"travel_type"`
		Travelers   json.RawMessage `json:"travelers"`
		Interests   []string        `json:"interests"`
		Overview    string          `json:"overview"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	r.Destination = a.Destination
	r.TravelType = a.TravelType
	r.Interests = a.Interests
	r.Overview = a.Overview
	r.Duration = flexInt(a.Duration)
	r.Budget = flexFloat(a.Budget)
	r.Travelers = flexInt(a.Travelers)
	return nil
}

// applyDefaults fills the documented defaults for missing fields and keeps
// the interests list non-nil for downstream string building.
func (r *TravelRequest) applyDefaults() {
	if r.Duration <= 0 {
		r.Duration = 7
	}
	if r.Budget <= 0 {
		r.Budget = 2000
	}
	if r.Travelers <= 0 {
		r.Travelers = 2
	}
	if r.Interests == nil {
		r.Interests = []string{}
	}
}

func flexFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
		s = strings.ReplaceAll(s, ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

func flexInt(raw json.RawMessage) int {
	return int(flexFloat(raw))
}

// Place is one attraction produced by the places finder.
type Place struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	HowToReach  string  `json:"how_to_reach"`
	BestTime    string  `json:"best_time"`
	Duration    string  `json:"duration"`
	EntryFee    string  `json:"entry_fee"`
	Rating      float64 `json:"rating"`
	Tips        string  `json:"tips"`
	Coordinates string  `json:"coordinates"`
	ImageURL    string  `json:"image_url"`
	ImageSearch string  `json:"image_search,omitempty"`
	MapsLink    string  `json:"maps_link"`
	SourceURL   string  `json:"source_url,omitempty"`
}

// Restaurant is one dining venue produced by the restaurants finder.
type Restaurant struct {
	Name              string   `json:"name"`
	Cuisine           string   `json:"cuisine"`
	Description       string   `json:"description"`
	BudgetLevel       string   `json:"budget_level"`
	AvgCostPerPerson  string   `json:"avg_cost_per_person"`
	Location          string   `json:"location"`
	Rating            float64  `json:"rating"`
	Specialties       []string `json:"specialties"`
	Atmosphere        string   `json:"atmosphere"`
	BestTime          string   `json:"best_time"`
	ReservationNeeded bool     `json:"reservation_needed"`
	ImageURL          string   `json:"image_url"`
	ImageSearch       string   `json:"image_search,omitempty"`
	MapsLink          string   `json:"maps_link"`
	SourceURL         string   `json:"source_url,omitempty"`
}

// Hotel is one lodging option produced by the hotels finder.
type Hotel struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	PricePerNight  string   `json:"price_per_night"`
	TotalEstimated string   `json:"total_estimated"`
	Rating         float64  `json:"rating"`
	Amenities      []string `json:"amenities"`
	RoomType       string   `json:"room_type"`
	Proximity      string   `json:"proximity"`
	BookingTip     string   `json:"booking_tip"`
	ImageURL       string   `json:"image_url"`
	ImageSearch    string   `json:"image_search,omitempty"`
	MapsLink       string   `json:"maps_link"`
	SourceURL      string   `json:"source_url,omitempty"`
}

// Activity is one timed entry in a day plan.
type Activity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
}

// ItineraryDay is one day of the generated schedule.
type ItineraryDay struct {
	Day           int               `json:"day"`
	Title         string            `json:"title"`
	Activities    []Activity        `json:"activities"`
	Meals         map[string]string `json:"meals"`
	EstimatedCost string            `json:"estimated_cost"`
	Tips          string            `json:"tips"`
}

// BudgetBreakdown is the deterministic cost rollup over the accumulated state.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Miscellaneous  float64 `json:"miscellaneous"`
	TotalEstimated float64 `json:"total_estimated"`
	UserBudget     float64 `json:"user_budget"`
	Remaining      float64 `json:"remaining"`
	WithinBudget   bool    `json:"within_budget"`
}

// PlanState is the aggregate carried through the pipeline. One instance per
// planning run, owned by the orchestrator; list fields are never nil so
// summary building downstream never branches on null.
type PlanState struct {
	TravelDetails   TravelRequest   `json:"travel_details"`
	Places          []Place         `json:"places"`
	Restaurants     []Restaurant    `json:"restaurants"`
	Hotels          []Hotel         `json:"hotels"`
	Itinerary       []ItineraryDay  `json:"itinerary"`
	BudgetBreakdown BudgetBreakdown `json:"budget_breakdown"`
	Error           string          `json:"error,omitempty"`
}

// NewPlanState returns a PlanState with all list fields initialized empty.
func NewPlanState() *PlanState {
	return &PlanState{
		TravelDetails: TravelRequest{Interests: []string{}},
		Places:        []Place{},
		Restaurants:   []Restaurant{},
		Hotels:        []Hotel{},
		Itinerary:     []ItineraryDay{},
	}
}
