package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"

	"github.com/powerplai/prediction-api/internal/models"
)

// statsStore reads entities and aggregates from Postgres and per-game log
// rows from ClickHouse.
type statsStore struct {
	pg PgPool
	ch driver.Conn
}

// New creates a Store backed by Postgres and ClickHouse.
func New(pg PgPool, ch driver.Conn) Store {
	return &statsStore{pg: pg, ch: ch}
}

func (s *statsStore) CurrentSeason(ctx context.Context) (string, error) {
	var season string
	err := s.pg.QueryRow(ctx, `
		SELECT COALESCE(MAX(season), '') FROM player_season_stats
	`).Scan(&season)
	if err != nil {
		return "", fmt.Errorf("current season: %w", err)
	}
	if season == "" {
		return "", ErrNotFound
	}
	return season, nil
}

func (s *statsStore) GetSeasonRecord(ctx context.Context, playerID int64, season string) (*models.PlayerSeasonRecord, error) {
	rec := &models.PlayerSeasonRecord{PlayerID: playerID, Season: season}
	err := s.pg.QueryRow(ctx, `
		SELECT
			p.name,
			COALESCE(s.team_abbrev, ''),
			COALESCE(s.games_played, 0),
			COALESCE(s.goals, 0),
			COALESCE(s.assists, 0),
			COALESCE(s.points, 0),
			COALESCE(s.shots, 0),
			COALESCE(s.xg, 0),
			COALESCE(s.corsi_for_pct, 0)
		FROM player_season_stats s
		JOIN players p ON p.id = s.player_id
		WHERE s.player_id = $1 AND s.season = $2
	`, playerID, season).Scan(
		&rec.PlayerName, &rec.TeamAbbrev, &rec.GamesPlayed,
		&rec.Goals, &rec.Assists, &rec.Points, &rec.Shots,
		&rec.ExpectedGoals, &rec.CorsiForPct,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("season record for player %d: %w", playerID, err)
	}
	return rec, nil
}

func (s *statsStore) GetTeamContext(ctx context.Context, team, season string) (*models.TeamContext, error) {
	tc := &models.TeamContext{TeamAbbrev: team, Season: season}
	err := s.pg.QueryRow(ctx, `
		SELECT
			COALESCE(games_played, 0),
			COALESCE(goals_for_per_game, 0),
			COALESCE(goals_against_per_game, 0),
			COALESCE(total_goals_per_game, 0)
		FROM team_season_stats
		WHERE team_abbrev = $1 AND season = $2
	`, team, season).Scan(
		&tc.GamesPlayed, &tc.GoalsForPerGame, &tc.GoalsAgainstPerGame, &tc.TotalGoalsPerGame,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("team context for %s: %w", team, err)
	}
	return tc, nil
}

func (s *statsStore) GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error) {
	gc := &models.GoalieContext{TeamAbbrev: team}

	// League-average save% for the latest ingested season. Zero when no
	// goalie stats exist yet; the engine substitutes its configured value.
	err := s.pg.QueryRow(ctx, `
		SELECT COALESCE(AVG(save_pct), 0)
		FROM goalie_stats
		WHERE season = (SELECT MAX(season) FROM goalie_stats)
	`).Scan(&gc.LeagueSavePct)
	if err != nil {
		return nil, fmt.Errorf("league save pct: %w", err)
	}

	starter := &models.GoalieStarter{}
	err = s.pg.QueryRow(ctx, `
		SELECT p.id, p.name, COALESCE(gs.save_pct, 0), COALESCE(gs.games_started, 0)
		FROM probable_goalies pg
		JOIN players p ON p.id = pg.goalie_id
		JOIN goalie_stats gs ON gs.player_id = pg.goalie_id
		WHERE pg.team_abbrev = $1 AND pg.game_date = $2
		ORDER BY pg.confirmed DESC, gs.season DESC
		LIMIT 1
	`, team, asOf).Scan(&starter.PlayerID, &starter.Name, &starter.SavePct, &starter.GamesStarted)
	if errors.Is(err, pgx.ErrNoRows) {
		// Unannounced starter is ordinary absence.
		return gc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("probable goalie for %s: %w", team, err)
	}
	gc.Starter = starter
	return gc, nil
}

func (s *statsStore) GetScheduledGames(ctx context.Context, date time.Time) ([]models.ScheduledGame, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT nhl_game_id, season, game_date, home_team_abbrev, away_team_abbrev,
		       COALESCE(venue, ''), COALESCE(start_time_utc, game_date::timestamp), game_state
		FROM games
		WHERE game_date = $1
		ORDER BY nhl_game_id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("scheduled games for %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var games []models.ScheduledGame
	for rows.Next() {
		var g models.ScheduledGame
		if err := rows.Scan(
			&g.GameID, &g.Season, &g.GameDate, &g.HomeTeam, &g.AwayTeam,
			&g.Venue, &g.StartTime, &g.GameState,
		); err != nil {
			return nil, fmt.Errorf("scan scheduled game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scheduled games rows: %w", err)
	}
	return games, nil
}

func (s *statsStore) GetTeamRoster(ctx context.Context, team, season string) ([]models.RosterEntry, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT p.id, p.name, COALESCE(p.position, '')
		FROM player_season_stats s
		JOIN players p ON p.id = s.player_id
		WHERE s.team_abbrev = $1 AND s.season = $2
		  AND COALESCE(p.position, '') <> 'G'
		ORDER BY COALESCE(s.points, 0) DESC, p.id
	`, team, season)
	if err != nil {
		return nil, fmt.Errorf("roster for %s: %w", team, err)
	}
	defer rows.Close()

	var roster []models.RosterEntry
	for rows.Next() {
		entry := models.RosterEntry{TeamAbbrev: team}
		if err := rows.Scan(&entry.PlayerID, &entry.Name, &entry.Position); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		roster = append(roster, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("roster rows: %w", err)
	}
	return roster, nil
}
