package logic

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/powerplai/prediction-api/internal/models"
	"github.com/powerplai/prediction-api/internal/repository"
)

// playerTask is one unit of fan-out work: one rostered skater in one game.
type playerTask struct {
	player   models.RosterEntry
	game     models.ScheduledGame
	opponent string
	isHome   bool
}

// rankSlate computes a prediction for every rostered skater across the given
// games and returns the ranked results. The run is all-or-nothing: any store
// failure cancels the remaining work and no partial slate is returned.
func (s *predictionService) rankSlate(ctx context.Context, season string, date time.Time, games []models.ScheduledGame) ([]models.PredictionResult, error) {
	type side struct {
		game     models.ScheduledGame
		team     string
		opponent string
		isHome   bool
	}
	var sides []side
	for _, g := range games {
		sides = append(sides,
			side{game: g, team: g.HomeTeam, opponent: g.AwayTeam, isHome: true},
			side{game: g, team: g.AwayTeam, opponent: g.HomeTeam, isHome: false},
		)
	}

	// Roster fetches fan out first so the per-player task list is complete
	// before prediction work starts.
	rosters := make([][]models.RosterEntry, len(sides))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.WorkerLimit)
	for i, sd := range sides {
		i, sd := i, sd
		g.Go(func() error {
			roster, err := s.store.GetTeamRoster(gctx, sd.team, season)
			if err != nil {
				return fmt.Errorf("roster %s: %w", sd.team, err)
			}
			rosters[i] = roster
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var tasks []playerTask
	for i, sd := range sides {
		for _, p := range rosters[i] {
			tasks = append(tasks, playerTask{
				player:   p,
				game:     sd.game,
				opponent: sd.opponent,
				isHome:   sd.isHome,
			})
		}
	}

	// One slot per task keeps collection lock-free; ineligible players
	// leave a nil slot instead of a synthetic zero score.
	results := make([]*models.PredictionResult, len(tasks))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.WorkerLimit)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			res, err := s.predictPlayer(gctx, season, date, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]models.PredictionResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}

	// Total order: composite desc, tier desc, player ID asc.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Composite != ranked[j].Composite {
			return ranked[i].Composite > ranked[j].Composite
		}
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence.Rank() > ranked[j].Confidence.Rank()
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked, nil
}

// predictPlayer computes one skater's forecast. It returns (nil, nil) for a
// player with insufficient history, and an error only for store failures.
func (s *predictionService) predictPlayer(ctx context.Context, season string, date time.Time, t playerTask) (*models.PredictionResult, error) {
	in := factorInputs{isHome: t.isHome}

	// The five repository reads are independent; issue them concurrently.
	g, gctx := errgroup.WithContext(ctx)

	var noSeason bool
	g.Go(func() error {
		rec, err := s.store.GetSeasonRecord(gctx, t.player.PlayerID, season)
		if errors.Is(err, repository.ErrNotFound) {
			noSeason = true
			return nil
		}
		if err != nil {
			return err
		}
		in.season = rec
		return nil
	})

	g.Go(func() error {
		recent, err := s.store.GetRecentGames(gctx, t.player.PlayerID, s.cfg.RecentFormWindow, date)
		if err != nil {
			return err
		}
		in.recent = recent
		return nil
	})

	g.Go(func() error {
		h2h, err := s.store.GetHeadToHead(gctx, t.player.PlayerID, t.opponent)
		if err != nil {
			return err
		}
		in.h2h = h2h
		return nil
	})

	g.Go(func() error {
		venue, err := s.store.GetVenueSplit(gctx, t.player.PlayerID, t.isHome)
		if err != nil {
			return err
		}
		in.venue = venue
		return nil
	})

	g.Go(func() error {
		team, err := s.store.GetTeamContext(gctx, t.player.TeamAbbrev, season)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		in.team = team
		return nil
	})

	g.Go(func() error {
		opp, err := s.store.GetTeamContext(gctx, t.opponent, season)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		in.opp = opp
		return nil
	})

	g.Go(func() error {
		goalie, err := s.store.GetGoalieContext(gctx, t.opponent, date)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		in.goalie = goalie
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("player %d: %w", t.player.PlayerID, err)
	}

	if noSeason || in.season == nil || in.season.GamesPlayed < s.cfg.MinGamesEligible {
		playersExcluded.Inc()
		return nil, nil
	}

	factors := s.engine.scoreFactors(in)
	for _, f := range factors {
		if f.Fallback {
			factorFallbacks.Inc()
		}
	}

	h2hFallback := false
	for _, f := range factors {
		if f.Name == models.FactorHeadToHead {
			h2hFallback = f.Fallback
		}
	}

	predictionsComputed.Inc()
	return &models.PredictionResult{
		PlayerID:   t.player.PlayerID,
		PlayerName: t.player.Name,
		Team:       t.player.TeamAbbrev,
		Opponent:   t.opponent,
		GameID:     t.game.GameID,
		IsHome:     t.isHome,
		Composite:  s.engine.composite(factors),
		Confidence: s.engine.confidence(in.season.GamesPlayed, in.recent, h2hFallback),
		Factors:    factors,
	}, nil
}
