package logic

import "github.com/powerplai/prediction-api/internal/models"

// confidence derives the reliability tier from sample sizes and consistency.
// It never reads the composite score: a player can score high with low
// confidence.
//
// Checks run as an ordered waterfall:
//  1. sample adequacy: season games played gates the ceiling tier
//  2. form consistency: a volatile recent window downgrades high to medium
//  3. head-to-head absence: a soft signal, downgrades high to medium but
//     never below medium
func (e engine) confidence(gamesPlayed int, recent []models.GameLogEntry, h2hFallback bool) models.ConfidenceTier {
	tier := models.ConfidenceLow
	switch {
	case gamesPlayed >= e.cfg.HighGames:
		tier = models.ConfidenceHigh
	case gamesPlayed >= e.cfg.MediumGames:
		tier = models.ConfidenceMedium
	}

	if tier == models.ConfidenceHigh && pointsVariance(recent) > e.cfg.VarianceThreshold {
		tier = models.ConfidenceMedium
	}

	if tier == models.ConfidenceHigh && h2hFallback {
		tier = models.ConfidenceMedium
	}

	return tier
}
