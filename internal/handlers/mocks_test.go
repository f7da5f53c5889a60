package handlers

import (
	"context"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

// mockPredictionService implements logic.PredictionService for testing
type mockPredictionService struct {
	PredictSlateFunc   func(ctx context.Context, date time.Time) (*models.SlatePrediction, error)
	PredictMatchupFunc func(ctx context.Context, home, away string, date time.Time) (*models.MatchupPrediction, error)
}

func (m *mockPredictionService) PredictSlate(ctx context.Context, date time.Time) (*models.SlatePrediction, error) {
	if m.PredictSlateFunc != nil {
		return m.PredictSlateFunc(ctx, date)
	}
	return &models.SlatePrediction{Date: date.Format("2006-01-02")}, nil
}

func (m *mockPredictionService) PredictMatchup(ctx context.Context, home, away string, date time.Time) (*models.MatchupPrediction, error) {
	if m.PredictMatchupFunc != nil {
		return m.PredictMatchupFunc(ctx, home, away, date)
	}
	return &models.MatchupPrediction{HomeTeam: home, AwayTeam: away, Date: date.Format("2006-01-02")}, nil
}

// mockTeamStatsService implements logic.TeamStatsService for testing
type mockTeamStatsService struct {
	GetTeamContextFunc   func(ctx context.Context, team string) (*models.TeamContext, error)
	GetGoalieContextFunc func(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error)
}

func (m *mockTeamStatsService) GetTeamContext(ctx context.Context, team string) (*models.TeamContext, error) {
	if m.GetTeamContextFunc != nil {
		return m.GetTeamContextFunc(ctx, team)
	}
	return nil, repository.ErrNotFound
}

func (m *mockTeamStatsService) GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error) {
	if m.GetGoalieContextFunc != nil {
		return m.GetGoalieContextFunc(ctx, team, asOf)
	}
	return &models.GoalieContext{TeamAbbrev: team}, nil
}

// mockScheduleStore implements the schedule read used by the games handler.
type mockScheduleStore struct {
	repository.Store

	GetScheduledGamesFunc func(ctx context.Context, date time.Time) ([]models.ScheduledGame, error)
}

func (m *mockScheduleStore) GetScheduledGames(ctx context.Context, date time.Time) ([]models.ScheduledGame, error) {
	if m.GetScheduledGamesFunc != nil {
		return m.GetScheduledGamesFunc(ctx, date)
	}
	return nil, nil
}
