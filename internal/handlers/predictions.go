package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// matchupParams validates the team abbreviations of a matchup request.
type matchupParams struct {
	Home string `validate:"required,len=3,alpha,uppercase"`
	Away string `validate:"required,len=3,alpha,uppercase,nefield=Home"`
}

// GetSlatePredictions returns the ranked scoring forecasts for a date's games
// @Summary Get Slate Predictions
// @Tags Predictions
// @Accept json
// @Produce json
// @Param date query string false "Slate date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} models.SlatePrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predictions/slate [get]
func (h *Handler) GetSlatePredictions(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	cacheKey := "predictions:slate:" + date.Format("2006-01-02")
	if h.redis != nil {
		if cached, err := h.redis.Get(r.Context(), cacheKey).Bytes(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		} else if err != redis.Nil {
			h.logger.Warnw("Slate cache read failed", "key", cacheKey, "error", err)
		}
	}

	slate, err := h.prediction.PredictSlate(r.Context(), date)
	if err != nil {
		h.logger.Errorw("Failed to predict slate", "date", date.Format("2006-01-02"), "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute predictions")
		return
	}

	if h.redis != nil {
		if payload, err := json.Marshal(slate); err == nil {
			if err := h.redis.Set(r.Context(), cacheKey, payload, h.cacheTTL).Err(); err != nil {
				h.logger.Warnw("Slate cache write failed", "key", cacheKey, "error", err)
			}
		}
	}

	h.jsonResponse(w, http.StatusOK, slate)
}

// GetMatchupPredictions returns ranked forecasts scoped to one matchup
// @Summary Get Matchup Predictions
// @Tags Predictions
// @Accept json
// @Produce json
// @Param homeTeam path string true "Home team abbreviation (e.g. TOR)"
// @Param awayTeam path string true "Away team abbreviation (e.g. BOS)"
// @Param date query string false "Game date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} models.MatchupPrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predictions/matchup/{homeTeam}/{awayTeam} [get]
func (h *Handler) GetMatchupPredictions(w http.ResponseWriter, r *http.Request) {
	params := matchupParams{
		Home: chi.URLParam(r, "homeTeam"),
		Away: chi.URLParam(r, "awayTeam"),
	}
	if err := h.validator.Struct(params); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Team abbreviations must be three uppercase letters and distinct")
		return
	}

	date, err := dateParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	matchup, err := h.prediction.PredictMatchup(r.Context(), params.Home, params.Away, date)
	if err != nil {
		h.logger.Errorw("Failed to predict matchup",
			"home", params.Home, "away", params.Away, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute predictions")
		return
	}

	h.jsonResponse(w, http.StatusOK, matchup)
}
