package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

type teamStatsService struct {
	store repository.Store
}

func NewTeamStatsService(store repository.Store) TeamStatsService {
	return &teamStatsService{store: store}
}

func (s *teamStatsService) GetTeamContext(ctx context.Context, team string) (*models.TeamContext, error) {
	season, err := s.store.CurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve season: %w", err)
	}
	return s.store.GetTeamContext(ctx, team, season)
}

func (s *teamStatsService) GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error) {
	return s.store.GetGoalieContext(ctx, team, asOf)
}
