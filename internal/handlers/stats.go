package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/powerplai/prediction-api/internal/repository"
)

// GetTeamContext returns a team's season pace numbers
// @Summary Get Team Context
// @Tags Stats
// @Accept json
// @Produce json
// @Param team path string true "Team abbreviation"
// @Success 200 {object} models.TeamContext
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stats/team/{team} [get]
func (h *Handler) GetTeamContext(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	if team == "" {
		h.errorResponse(w, http.StatusBadRequest, "Team is required")
		return
	}

	tc, err := h.teamStats.GetTeamContext(r.Context(), team)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "No stats for team")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to get team context", "team", team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get team stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, tc)
}

// GetGoalieContext returns the probable starter picture for a team
// @Summary Get Goalie Context
// @Tags Stats
// @Accept json
// @Produce json
// @Param team path string true "Team abbreviation"
// @Param date query string false "Game date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} models.GoalieContext
// @Router /stats/goalie/{team} [get]
func (h *Handler) GetGoalieContext(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	if team == "" {
		h.errorResponse(w, http.StatusBadRequest, "Team is required")
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	gc, err := h.teamStats.GetGoalieContext(r.Context(), team, date)
	if err != nil {
		h.logger.Errorw("Failed to get goalie context", "team", team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get goalie stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, gc)
}
