package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Database URLs
	PostgresURL   string
	ClickHouseURL string
	RedisURL      string

	// Slate cache
	SlateCacheTTL time.Duration

	// Prediction model tuning
	Prediction PredictionConfig
}

// FactorWeights are the ensemble weights. They must sum to exactly 1.0.
type FactorWeights struct {
	RecentForm     float64
	SeasonBaseline float64
	HeadToHead     float64
	HomeAway       float64
	GoalieMatchup  float64
	TeamPace       float64
}

// Sum returns the total weight across all six factors.
func (w FactorWeights) Sum() float64 {
	return w.RecentForm + w.SeasonBaseline + w.HeadToHead + w.HomeAway + w.GoalieMatchup + w.TeamPace
}

// PredictionConfig is the immutable tuning surface of the prediction engine.
// It is passed into service constructors so concurrent runs with different
// calibrations never share state.
type PredictionConfig struct {
	Weights FactorWeights

	// Normalization ceilings
	PointsCeiling float64 // per-game scoring ceiling for PPG factors
	PaceCeiling   float64 // combined goals-per-game ceiling for the pace factor
	LeagueSavePct float64 // league-average save% used when the store has none

	// Sampling
	RecentFormWindow int // game-log window for the recent-form factor
	H2HMinGames      int // below this, head-to-head reverts to season baseline
	VenueMinGames    int // below this, the venue split reverts to season baseline

	// Confidence thresholds
	HighGames         int     // season games played required for "high"
	MediumGames       int     // season games played required for "medium"
	VarianceThreshold float64 // recent-form points variance that downgrades "high"

	// Eligibility
	MinGamesEligible int // players under this many games played are excluded

	// Worker pool
	WorkerLimit int // bound on concurrent per-player computations
}

// Load loads configuration from environment variables and validates it.
// Invalid prediction tuning is rejected here, before any run.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		SlateCacheTTL: getEnvDuration("SLATE_CACHE_TTL", 10*time.Minute),

		Prediction: PredictionConfig{
			Weights: FactorWeights{
				RecentForm:     getEnvFloat("WEIGHT_RECENT_FORM", 0.30),
				SeasonBaseline: getEnvFloat("WEIGHT_SEASON_BASELINE", 0.25),
				HeadToHead:     getEnvFloat("WEIGHT_H2H_HISTORY", 0.15),
				HomeAway:       getEnvFloat("WEIGHT_HOME_AWAY", 0.10),
				GoalieMatchup:  getEnvFloat("WEIGHT_GOALIE_MATCHUP", 0.10),
				TeamPace:       getEnvFloat("WEIGHT_TEAM_PACE", 0.10),
			},
			PointsCeiling:     getEnvFloat("POINTS_CEILING", 2.5),
			PaceCeiling:       getEnvFloat("PACE_CEILING", 8.0),
			LeagueSavePct:     getEnvFloat("LEAGUE_AVG_SAVE_PCT", 0.905),
			RecentFormWindow:  getEnvInt("RECENT_FORM_WINDOW", 5),
			H2HMinGames:       getEnvInt("MIN_GAMES_H2H", 3),
			VenueMinGames:     getEnvInt("MIN_GAMES_VENUE", 5),
			HighGames:         getEnvInt("CONFIDENCE_HIGH_GAMES", 10),
			MediumGames:       getEnvInt("CONFIDENCE_MEDIUM_GAMES", 5),
			VarianceThreshold: getEnvFloat("VARIANCE_THRESHOLD", 1.5),
			MinGamesEligible:  getEnvInt("MIN_GAMES_ELIGIBLE", 4),
			WorkerLimit:       getEnvInt("WORKER_LIMIT", 16),
		},
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}
	if cfg.ClickHouseURL, err = getEnvRequired("CLICKHOUSE_URL"); err != nil {
		return nil, err
	}
	if cfg.RedisURL, err = getEnvRequired("REDIS_URL"); err != nil {
		return nil, err
	}

	if err := cfg.Prediction.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects a tuning that would break the model's invariants.
func (p PredictionConfig) Validate() error {
	if sum := p.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("factor weights must sum to 1.0, got %v", sum)
	}
	if p.PointsCeiling <= 0 {
		return fmt.Errorf("points ceiling must be positive, got %v", p.PointsCeiling)
	}
	if p.PaceCeiling <= 0 {
		return fmt.Errorf("pace ceiling must be positive, got %v", p.PaceCeiling)
	}
	if p.LeagueSavePct <= 0 || p.LeagueSavePct >= 1 {
		return fmt.Errorf("league save pct must be in (0,1), got %v", p.LeagueSavePct)
	}
	if p.RecentFormWindow < 1 {
		return fmt.Errorf("recent form window must be at least 1, got %d", p.RecentFormWindow)
	}
	if p.VarianceThreshold <= 0 {
		return fmt.Errorf("variance threshold must be positive, got %v", p.VarianceThreshold)
	}
	if p.MediumGames > p.HighGames {
		return fmt.Errorf("medium games cutoff %d exceeds high cutoff %d", p.MediumGames, p.HighGames)
	}
	if p.WorkerLimit < 1 {
		return fmt.Errorf("worker limit must be at least 1, got %d", p.WorkerLimit)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
