package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost:5432/hockey")
	t.Setenv("CLICKHOUSE_URL", "clickhouse://localhost:9000/hockey_stats")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("env = %s, want development", cfg.Env)
	}
	if cfg.SlateCacheTTL != 10*time.Minute {
		t.Errorf("slate cache TTL = %v, want 10m", cfg.SlateCacheTTL)
	}
	if got := cfg.Prediction.Weights.Sum(); got != 1.0 {
		t.Errorf("default weights sum = %v, want 1.0", got)
	}
	if cfg.Prediction.RecentFormWindow != 5 {
		t.Errorf("recent form window = %d, want 5", cfg.Prediction.RecentFormWindow)
	}
	if cfg.Prediction.MinGamesEligible != 4 {
		t.Errorf("min games eligible = %d, want 4", cfg.Prediction.MinGamesEligible)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("allowed origins = %v, want the localhost default", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("WEIGHT_RECENT_FORM", "0.40")
	t.Setenv("WEIGHT_SEASON_BASELINE", "0.15")
	t.Setenv("SLATE_CACHE_TTL", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.Prediction.Weights.RecentForm != 0.40 {
		t.Errorf("recent form weight = %v, want 0.40", cfg.Prediction.Weights.RecentForm)
	}
	if cfg.SlateCacheTTL != 30*time.Second {
		t.Errorf("slate cache TTL = %v, want 30s", cfg.SlateCacheTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("allowed origins = %v, want two trimmed origins", cfg.AllowedOrigins)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("CLICKHOUSE_URL", "clickhouse://localhost:9000/hockey_stats")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "POSTGRES_URL") {
		t.Errorf("err = %v, want missing POSTGRES_URL", err)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEIGHT_RECENT_FORM", "0.50")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "sum to 1.0") {
		t.Errorf("err = %v, want weight sum error", err)
	}
}

func validTuning() PredictionConfig {
	return PredictionConfig{
		Weights: FactorWeights{
			RecentForm:     0.30,
			SeasonBaseline: 0.25,
			HeadToHead:     0.15,
			HomeAway:       0.10,
			GoalieMatchup:  0.10,
			TeamPace:       0.10,
		},
		PointsCeiling:     2.5,
		PaceCeiling:       8.0,
		LeagueSavePct:     0.905,
		RecentFormWindow:  5,
		H2HMinGames:       3,
		VenueMinGames:     5,
		HighGames:         10,
		MediumGames:       5,
		VarianceThreshold: 1.5,
		MinGamesEligible:  4,
		WorkerLimit:       16,
	}
}

func TestPredictionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PredictionConfig)
		wantErr bool
	}{
		{"valid tuning", func(p *PredictionConfig) {}, false},
		{"weights off by a little", func(p *PredictionConfig) { p.Weights.TeamPace = 0.11 }, true},
		{"zero points ceiling", func(p *PredictionConfig) { p.PointsCeiling = 0 }, true},
		{"negative pace ceiling", func(p *PredictionConfig) { p.PaceCeiling = -1 }, true},
		{"save pct out of range", func(p *PredictionConfig) { p.LeagueSavePct = 1.2 }, true},
		{"empty recent window", func(p *PredictionConfig) { p.RecentFormWindow = 0 }, true},
		{"zero variance threshold", func(p *PredictionConfig) { p.VarianceThreshold = 0 }, true},
		{"inverted confidence cutoffs", func(p *PredictionConfig) { p.MediumGames = 12 }, true},
		{"no workers", func(p *PredictionConfig) { p.WorkerLimit = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validTuning()
			tt.mutate(&p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
