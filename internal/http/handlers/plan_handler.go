// README: Trip planning handler (single plan_travel operation).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyager/internal/modules/planner"
)

// TripPlanner is what the handler needs from the planning service.
type TripPlanner interface {
	Plan(ctx context.Context, userInput string) (*planner.PlanState, error)
}

type PlanHandler struct {
	planner TripPlanner
}

func NewPlanHandler(p TripPlanner) *PlanHandler {
	return &PlanHandler{planner: p}
}

type planTravelReq struct {
	UserInput string `json:"user_input"`
}

// PlanTravel handles POST /api/plan_travel.
func (h *PlanHandler) PlanTravel(c *gin.Context) {
	var req planTravelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UserInput = strings.TrimSpace(req.UserInput)
	if req.UserInput == "" {
		writeError(c, http.StatusBadRequest, "user_input is required")
		return
	}

	state, err := h.planner.Plan(c.Request.Context(), req.UserInput)
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if state.Error != "" {
		writeError(c, http.StatusInternalServerError, state.Error)
		return
	}

	writeJSON(c, http.StatusOK, state)
}
