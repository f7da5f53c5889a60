package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

func teamRequest(path, team string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("team", team)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetTeamContext(t *testing.T) {
	teamStats := &mockTeamStatsService{
		GetTeamContextFunc: func(ctx context.Context, team string) (*models.TeamContext, error) {
			if team != "TOR" {
				return nil, repository.ErrNotFound
			}
			return &models.TeamContext{TeamAbbrev: "TOR", GoalsForPerGame: 3.4}, nil
		},
	}
	h := testHandler(&mockPredictionService{}, teamStats)

	rec := httptest.NewRecorder()
	h.GetTeamContext(rec, teamRequest("/api/v1/stats/team/TOR", "TOR"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var tc models.TeamContext
	if err := json.NewDecoder(rec.Body).Decode(&tc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tc.GoalsForPerGame != 3.4 {
		t.Errorf("goals for per game = %v, want 3.4", tc.GoalsForPerGame)
	}

	rec = httptest.NewRecorder()
	h.GetTeamContext(rec, teamRequest("/api/v1/stats/team/ZZZ", "ZZZ"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown team status = %d, want 404", rec.Code)
	}
}

func TestGetGoalieContext(t *testing.T) {
	teamStats := &mockTeamStatsService{
		GetGoalieContextFunc: func(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error) {
			return &models.GoalieContext{
				TeamAbbrev:    team,
				LeagueSavePct: 0.905,
				Starter:       &models.GoalieStarter{PlayerID: 301, Name: "Probable Starter", SavePct: 0.915},
			}, nil
		},
	}
	h := testHandler(&mockPredictionService{}, teamStats)

	rec := httptest.NewRecorder()
	h.GetGoalieContext(rec, teamRequest("/api/v1/stats/goalie/BOS?date=2026-01-15", "BOS"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var gc models.GoalieContext
	if err := json.NewDecoder(rec.Body).Decode(&gc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if gc.Starter == nil || gc.Starter.SavePct != 0.915 {
		t.Errorf("unexpected starter: %+v", gc.Starter)
	}
}

func TestGetGoalieContextBadDate(t *testing.T) {
	h := testHandler(&mockPredictionService{}, &mockTeamStatsService{})

	rec := httptest.NewRecorder()
	h.GetGoalieContext(rec, teamRequest("/api/v1/stats/goalie/BOS?date=soon", "BOS"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetGames(t *testing.T) {
	store := &mockScheduleStore{
		GetScheduledGamesFunc: func(ctx context.Context, date time.Time) ([]models.ScheduledGame, error) {
			return []models.ScheduledGame{
				{GameID: 2025020500, HomeTeam: "TOR", AwayTeam: "BOS"},
			}, nil
		},
	}
	h := testHandler(&mockPredictionService{}, &mockTeamStatsService{})
	h.store = store

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games?date=2026-01-15", nil)
	rec := httptest.NewRecorder()
	h.GetGames(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var day models.GameDay
	if err := json.NewDecoder(rec.Body).Decode(&day); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if day.Date != "2026-01-15" || len(day.Games) != 1 {
		t.Errorf("got %s with %d games, want 2026-01-15 with 1 game", day.Date, len(day.Games))
	}
}
