package logic

import (
	"context"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

// mockStore implements repository.Store for testing
type mockStore struct {
	CurrentSeasonFunc     func(ctx context.Context) (string, error)
	GetSeasonRecordFunc   func(ctx context.Context, playerID int64, season string) (*models.PlayerSeasonRecord, error)
	GetRecentGamesFunc    func(ctx context.Context, playerID int64, limit int, asOf time.Time) ([]models.GameLogEntry, error)
	GetHeadToHeadFunc     func(ctx context.Context, playerID int64, opponent string) (*models.HeadToHeadRecord, error)
	GetVenueSplitFunc     func(ctx context.Context, playerID int64, home bool) (*models.VenueSplit, error)
	GetTeamContextFunc    func(ctx context.Context, team, season string) (*models.TeamContext, error)
	GetGoalieContextFunc  func(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error)
	GetScheduledGamesFunc func(ctx context.Context, date time.Time) ([]models.ScheduledGame, error)
	GetTeamRosterFunc     func(ctx context.Context, team, season string) ([]models.RosterEntry, error)
}

func (m *mockStore) CurrentSeason(ctx context.Context) (string, error) {
	if m.CurrentSeasonFunc != nil {
		return m.CurrentSeasonFunc(ctx)
	}
	return "20252026", nil
}

func (m *mockStore) GetSeasonRecord(ctx context.Context, playerID int64, season string) (*models.PlayerSeasonRecord, error) {
	if m.GetSeasonRecordFunc != nil {
		return m.GetSeasonRecordFunc(ctx, playerID, season)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) GetRecentGames(ctx context.Context, playerID int64, limit int, asOf time.Time) ([]models.GameLogEntry, error) {
	if m.GetRecentGamesFunc != nil {
		return m.GetRecentGamesFunc(ctx, playerID, limit, asOf)
	}
	return nil, nil
}

func (m *mockStore) GetHeadToHead(ctx context.Context, playerID int64, opponent string) (*models.HeadToHeadRecord, error) {
	if m.GetHeadToHeadFunc != nil {
		return m.GetHeadToHeadFunc(ctx, playerID, opponent)
	}
	return &models.HeadToHeadRecord{Opponent: opponent}, nil
}

func (m *mockStore) GetVenueSplit(ctx context.Context, playerID int64, home bool) (*models.VenueSplit, error) {
	if m.GetVenueSplitFunc != nil {
		return m.GetVenueSplitFunc(ctx, playerID, home)
	}
	return &models.VenueSplit{Home: home}, nil
}

func (m *mockStore) GetTeamContext(ctx context.Context, team, season string) (*models.TeamContext, error) {
	if m.GetTeamContextFunc != nil {
		return m.GetTeamContextFunc(ctx, team, season)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error) {
	if m.GetGoalieContextFunc != nil {
		return m.GetGoalieContextFunc(ctx, team, asOf)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStore) GetScheduledGames(ctx context.Context, date time.Time) ([]models.ScheduledGame, error) {
	if m.GetScheduledGamesFunc != nil {
		return m.GetScheduledGamesFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockStore) GetTeamRoster(ctx context.Context, team, season string) ([]models.RosterEntry, error) {
	if m.GetTeamRosterFunc != nil {
		return m.GetTeamRosterFunc(ctx, team, season)
	}
	return nil, nil
}
