// Seeds a local Postgres + ClickHouse with a small demo slate so the API can
// be exercised without running the ingestion pipelines.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const season = "20252026"

type demoPlayer struct {
	id     int64
	name   string
	pos    string
	team   string
	games  int
	goals  int
	points int
}

var demoPlayers = []demoPlayer{
	{8479318, "Auston Matthews", "C", "TOR", 20, 14, 26},
	{8478483, "Mitch Marner", "RW", "TOR", 20, 6, 24},
	{8473419, "Brad Marchand", "LW", "BOS", 19, 8, 21},
	{8480021, "David Pastrnak", "RW", "BOS", 20, 12, 27},
}

func main() {
	ctx := context.Background()

	pgURL := os.Getenv("POSTGRES_URL")
	chURL := os.Getenv("CLICKHOUSE_URL")
	if pgURL == "" || chURL == "" {
		log.Fatal("POSTGRES_URL and CLICKHOUSE_URL are required")
	}

	pg, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pg.Close()

	chOpts, err := clickhouse.ParseDSN(chURL)
	if err != nil {
		log.Fatalf("clickhouse dsn: %v", err)
	}
	ch, err := clickhouse.Open(chOpts)
	if err != nil {
		log.Fatalf("clickhouse: %v", err)
	}
	defer ch.Close()

	for _, p := range demoPlayers {
		if _, err := pg.Exec(ctx, `
			INSERT INTO players (id, nhl_id, name, position, team_abbrev, created_at, updated_at)
			VALUES ($1, $1, $2, $3, $4, NOW(), NOW())
			ON CONFLICT (nhl_id) DO UPDATE SET team_abbrev = EXCLUDED.team_abbrev, updated_at = NOW()
		`, p.id, p.name, p.pos, p.team); err != nil {
			log.Fatalf("seed player %s: %v", p.name, err)
		}
		if _, err := pg.Exec(ctx, `
			INSERT INTO player_season_stats (player_id, season, team_abbrev, games_played, goals, assists, points, shots, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		`, p.id, season, p.team, p.games, p.goals, p.points-p.goals, p.points, p.goals*3); err != nil {
			log.Fatalf("seed season stats %s: %v", p.name, err)
		}
	}

	gameDate := time.Now().UTC().Truncate(24 * time.Hour)
	if _, err := pg.Exec(ctx, `
		INSERT INTO games (nhl_game_id, season, game_type, game_date, home_team_abbrev, away_team_abbrev, game_state)
		VALUES ($1, $2, 2, $3, 'TOR', 'BOS', 'FUT')
		ON CONFLICT (nhl_game_id) DO NOTHING
	`, 2025020500, season, gameDate); err != nil {
		log.Fatalf("seed game: %v", err)
	}

	batch, err := ch.PrepareBatch(ctx, `
		INSERT INTO hockey_stats.game_logs (
			player_id, game_id, game_date, season, team_abbrev, opponent,
			home_away, goals, assists, points, shots, toi
		)
	`)
	if err != nil {
		log.Fatalf("prepare game log batch: %v", err)
	}

	for _, p := range demoPlayers {
		opponent := "BOS"
		if p.team == "BOS" {
			opponent = "TOR"
		}
		for i := 0; i < 10; i++ {
			venue := "home"
			if i%2 == 1 {
				venue = "away"
			}
			points := (p.points + i) % 3
			if err := batch.Append(
				p.id,
				int64(2025020000+i),
				gameDate.AddDate(0, 0, -(i+1)),
				season,
				p.team,
				opponent,
				venue,
				int32(points/2),
				int32(points-points/2),
				int32(points),
				int32(2+i%3),
				16.5,
			); err != nil {
				log.Fatalf("append game log: %v", err)
			}
		}
	}
	if err := batch.Send(); err != nil {
		log.Fatalf("send game logs: %v", err)
	}

	log.Printf("seeded %d players, 1 game, %d game logs", len(demoPlayers), len(demoPlayers)*10)
}
