package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/powerplai/prediction-api/internal/models"
)

// Game logs live in ClickHouse: one row per player per game played, the
// high-volume side of the store.

func (s *statsStore) GetRecentGames(ctx context.Context, playerID int64, limit int, asOf time.Time) ([]models.GameLogEntry, error) {
	rows, err := s.ch.Query(ctx, `
		SELECT game_id, game_date, opponent, home_away, goals, assists, points, shots, toi
		FROM hockey_stats.game_logs
		WHERE player_id = ? AND game_date < ?
		ORDER BY game_date DESC, game_id DESC
		LIMIT ?
	`, playerID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("recent games for player %d: %w", playerID, err)
	}
	defer rows.Close()

	var entries []models.GameLogEntry
	for rows.Next() {
		var (
			gameID                        int64
			gameDate                      time.Time
			opponent, homeAway            string
			goals, assists, points, shots int32
			toi                           float64
		)
		if err := rows.Scan(&gameID, &gameDate, &opponent, &homeAway, &goals, &assists, &points, &shots, &toi); err != nil {
			return nil, fmt.Errorf("scan game log: %w", err)
		}
		entries = append(entries, models.GameLogEntry{
			GameID:   gameID,
			GameDate: gameDate,
			Opponent: opponent,
			Home:     homeAway == "home",
			Goals:    int(goals),
			Assists:  int(assists),
			Points:   int(points),
			Shots:    int(shots),
			TOI:      toi,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent games rows: %w", err)
	}
	return entries, nil
}

func (s *statsStore) GetHeadToHead(ctx context.Context, playerID int64, opponent string) (*models.HeadToHeadRecord, error) {
	var (
		games  uint64
		points int64
	)
	err := s.ch.QueryRow(ctx, `
		SELECT count(), toInt64(sum(points))
		FROM hockey_stats.game_logs
		WHERE player_id = ? AND opponent = ?
	`, playerID, opponent).Scan(&games, &points)
	if err != nil {
		return nil, fmt.Errorf("head-to-head for player %d vs %s: %w", playerID, opponent, err)
	}
	return &models.HeadToHeadRecord{
		Opponent: opponent,
		Games:    int(games),
		Points:   int(points),
	}, nil
}

func (s *statsStore) GetVenueSplit(ctx context.Context, playerID int64, home bool) (*models.VenueSplit, error) {
	venue := "away"
	if home {
		venue = "home"
	}
	var (
		games  uint64
		points int64
	)
	err := s.ch.QueryRow(ctx, `
		SELECT count(), toInt64(sum(points))
		FROM hockey_stats.game_logs
		WHERE player_id = ? AND home_away = ?
	`, playerID, venue).Scan(&games, &points)
	if err != nil {
		return nil, fmt.Errorf("venue split for player %d: %w", playerID, err)
	}
	return &models.VenueSplit{
		Home:   home,
		Games:  int(games),
		Points: int(points),
	}, nil
}
