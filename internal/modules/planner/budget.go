package planner

import (
	"math"
	"regexp"
	"strconv"
)

var costNumberPattern = regexp.MustCompile(`\d+`)

// extractCost pulls a numeric cost out of a free-form string like "$50-100"
// or "$50". Two or more numbers are treated as a low-high range and averaged
// (only the first two count); "Free", "N/A" and empty strings are zero.
func extractCost(s string) float64 {
	if s == "" || s == "Free" || s == "N/A" {
		return 0
	}
	numbers := costNumberPattern.FindAllString(s, -1)
	switch {
	case len(numbers) >= 2:
		lo, _ := strconv.ParseFloat(numbers[0], 64)
		hi, _ := strconv.ParseFloat(numbers[1], 64)
		return (lo + hi) / 2
	case len(numbers) == 1:
		n, _ := strconv.ParseFloat(numbers[0], 64)
		return n
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateBudget derives the cost rollup from the accumulated state. Pure
// function, no network calls.
//
// Accommodation deliberately takes the cheapest hotel total as the planning
// baseline, and transportation/miscellaneous are fixed fractions of the user
// budget rather than search-derived.
func CalculateBudget(state *PlanState) BudgetBreakdown {
	accommodation := 0.0
	for i, hotel := range state.Hotels {
		cost := extractCost(hotel.TotalEstimated)
		if i == 0 || cost < accommodation {
			accommodation = cost
		}
	}

	food := 0.0
	for _, day := range state.Itinerary {
		food += extractCost(day.EstimatedCost)
	}

	activities := 0.0
	for _, place := range state.Places {
		activities += extractCost(place.EntryFee)
	}

	budget := state.TravelDetails.Budget
	transportation := budget * 0.12
	miscellaneous := budget * 0.08

	total := accommodation + food + activities + transportation + miscellaneous
	remaining := budget - total

	return BudgetBreakdown{
		Accommodation:  round2(accommodation),
		Food:           round2(food),
		Activities:     round2(activities),
		Transportation: round2(transportation),
		Miscellaneous:  round2(miscellaneous),
		TotalEstimated: round2(total),
		UserBudget:     budget,
		Remaining:      round2(remaining),
		WithinBudget:   remaining >= 0,
	}
}
