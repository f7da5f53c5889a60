package logic

import (
	"context"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
)

// PredictionService forecasts which skaters are most likely to score on a
// slate of games.
type PredictionService interface {
	// PredictSlate ranks every eligible skater scheduled to play on date.
	PredictSlate(ctx context.Context, date time.Time) (*models.SlatePrediction, error)
	// PredictMatchup ranks the skaters of a single matchup.
	PredictMatchup(ctx context.Context, home, away string, date time.Time) (*models.MatchupPrediction, error)
}

// TeamStatsService exposes team and goalie context reads to the API layer.
type TeamStatsService interface {
	GetTeamContext(ctx context.Context, team string) (*models.TeamContext, error)
	GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error)
}
