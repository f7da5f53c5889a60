package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/powerplai/prediction-api/internal/models"
)

// ErrNotFound signals ordinary absence of a record. Callers distinguish it
// from store failures, which abort a prediction run.
var ErrNotFound = errors.New("record not found")

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the read-only statistics repository the prediction engine runs
// against. Implementations must be safe for unbounded concurrent readers.
type Store interface {
	// CurrentSeason returns the most recent ingested season identifier.
	CurrentSeason(ctx context.Context) (string, error)

	// GetSeasonRecord returns a player's aggregate line for a season,
	// or ErrNotFound when the player has no record.
	GetSeasonRecord(ctx context.Context, playerID int64, season string) (*models.PlayerSeasonRecord, error)

	// GetRecentGames returns the player's last limit game logs before asOf,
	// most recent first, date ties broken by game ID.
	GetRecentGames(ctx context.Context, playerID int64, limit int, asOf time.Time) ([]models.GameLogEntry, error)

	// GetHeadToHead aggregates the player's career meetings with opponent.
	// A zero-game record is returned when they have never met.
	GetHeadToHead(ctx context.Context, playerID int64, opponent string) (*models.HeadToHeadRecord, error)

	// GetVenueSplit aggregates the player's games on one side of the
	// home/away split.
	GetVenueSplit(ctx context.Context, playerID int64, home bool) (*models.VenueSplit, error)

	// GetTeamContext returns a team's season pace numbers, or ErrNotFound.
	GetTeamContext(ctx context.Context, team, season string) (*models.TeamContext, error)

	// GetGoalieContext returns the goalie picture for a team on a date.
	// An unannounced starter is represented by a nil Starter, not an error.
	GetGoalieContext(ctx context.Context, team string, asOf time.Time) (*models.GoalieContext, error)

	// GetScheduledGames returns the slate for a date, ordered by game ID.
	GetScheduledGames(ctx context.Context, date time.Time) ([]models.ScheduledGame, error)

	// GetTeamRoster returns the skaters carried by a team for a season,
	// highest scorers first.
	GetTeamRoster(ctx context.Context, team, season string) ([]models.RosterEntry, error)
}
