package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/powerplai/prediction-api/internal/config"
	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

// leagueAvgTotalGoals is the fallback expected game total when team context
// is missing (two teams at ~3.0 goals each).
const leagueAvgTotalGoals = 6.0

type predictionService struct {
	store  repository.Store
	engine engine
	cfg    config.PredictionConfig
	logger *zap.SugaredLogger
}

func NewPredictionService(store repository.Store, cfg config.PredictionConfig, logger *zap.Logger) PredictionService {
	return &predictionService{
		store:  store,
		engine: engine{cfg: cfg},
		cfg:    cfg,
		logger: logger.Sugar(),
	}
}

func (s *predictionService) PredictSlate(ctx context.Context, date time.Time) (*models.SlatePrediction, error) {
	runID := uuid.NewString()
	start := time.Now()

	season, err := s.store.CurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve season: %w", err)
	}

	games, err := s.store.GetScheduledGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load slate: %w", err)
	}

	results, err := s.rankSlate(ctx, season, date, games)
	if err != nil {
		s.logger.Errorw("Slate prediction run failed", "run", runID, "date", date.Format("2006-01-02"), "error", err)
		return nil, err
	}

	slatesComputed.Inc()
	slateDuration.Observe(time.Since(start).Seconds())
	s.logger.Infow("Slate prediction run complete",
		"run", runID,
		"date", date.Format("2006-01-02"),
		"games", len(games),
		"players", len(results),
		"duration", time.Since(start),
	)

	return &models.SlatePrediction{
		Date:    date.Format("2006-01-02"),
		Season:  season,
		Games:   games,
		Results: results,
	}, nil
}

func (s *predictionService) PredictMatchup(ctx context.Context, home, away string, date time.Time) (*models.MatchupPrediction, error) {
	season, err := s.store.CurrentSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve season: %w", err)
	}

	// Use the scheduled game when it exists; an ad-hoc matchup still ranks.
	game := models.ScheduledGame{
		Season:   season,
		GameDate: date,
		HomeTeam: home,
		AwayTeam: away,
	}
	scheduled, err := s.store.GetScheduledGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load slate: %w", err)
	}
	for _, g := range scheduled {
		if g.HomeTeam == home && g.AwayTeam == away {
			game = g
			break
		}
	}

	results, err := s.rankSlate(ctx, season, date, []models.ScheduledGame{game})
	if err != nil {
		return nil, err
	}

	expectedTotal, paceRating := s.matchupPace(ctx, season, home, away)

	return &models.MatchupPrediction{
		Date:               date.Format("2006-01-02"),
		Season:             season,
		HomeTeam:           home,
		AwayTeam:           away,
		GameID:             game.GameID,
		ExpectedTotalGoals: expectedTotal,
		PaceRating:         paceRating,
		Results:            results,
	}, nil
}

// matchupPace summarizes the expected combined scoring of a matchup.
// Missing team context degrades to the league-average total.
func (s *predictionService) matchupPace(ctx context.Context, season, home, away string) (float64, string) {
	expectedTotal := leagueAvgTotalGoals

	homeCtx, err := s.store.GetTeamContext(ctx, home, season)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Warnw("Home team context unavailable", "team", home, "error", err)
		homeCtx = nil
	}
	awayCtx, err := s.store.GetTeamContext(ctx, away, season)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Warnw("Away team context unavailable", "team", away, "error", err)
		awayCtx = nil
	}
	if homeCtx != nil && awayCtx != nil {
		expectedTotal = (homeCtx.TotalGoalsPerGame + awayCtx.TotalGoalsPerGame) / 2
	}

	switch {
	case expectedTotal >= 6.5:
		return expectedTotal, models.PaceHigh
	case expectedTotal <= 5.5:
		return expectedTotal, models.PaceLow
	default:
		return expectedTotal, models.PaceAverage
	}
}
