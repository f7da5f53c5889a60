package handlers

import (
	"net/http"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
)

// GetGames returns the scheduled games for a date
// @Summary Get Scheduled Games
// @Tags Games
// @Accept json
// @Produce json
// @Param date query string false "Slate date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} models.GameDay
// @Router /games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	games, err := h.store.GetScheduledGames(r.Context(), date)
	if err != nil {
		h.logger.Errorw("Failed to get scheduled games", "date", date.Format("2006-01-02"), "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get games")
		return
	}

	h.jsonResponse(w, http.StatusOK, models.GameDay{
		Date:  date.Format("2006-01-02"),
		Games: games,
		AsOf:  time.Now().UTC(),
	})
}
