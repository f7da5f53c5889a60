package handlers

import (
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/powerplai/prediction-api/internal/logic"
	"github.com/powerplai/prediction-api/internal/repository"
)

type Config struct {
	Postgres   *pgxpool.Pool
	ClickHouse driver.Conn
	Redis      *redis.Client
	Logger     *zap.Logger

	SlateCacheTTL time.Duration

	// Services
	Store      repository.Store
	Prediction logic.PredictionService
	TeamStats  logic.TeamStatsService
}

type Handler struct {
	pg         *pgxpool.Pool
	ch         driver.Conn
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	cacheTTL   time.Duration
	store      repository.Store
	prediction logic.PredictionService
	teamStats  logic.TeamStatsService
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		cacheTTL:   cfg.SlateCacheTTL,
		store:      cfg.Store,
		prediction: cfg.Prediction,
		teamStats:  cfg.TeamStats,
	}
}
