package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	slatesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hockey_slates_computed_total",
		Help: "Total number of slate prediction runs completed",
	})

	slateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hockey_slate_duration_seconds",
		Help:    "Duration of slate prediction runs",
		Buckets: prometheus.DefBuckets,
	})

	predictionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hockey_predictions_computed_total",
		Help: "Total number of per-player predictions computed",
	})

	factorFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hockey_factor_fallbacks_total",
		Help: "Total number of factors that substituted a fallback for missing data",
	})

	playersExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hockey_players_excluded_total",
		Help: "Total number of players excluded for insufficient history",
	})
)
