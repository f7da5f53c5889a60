package logic

import "github.com/powerplai/prediction-api/internal/models"

// composite folds the six factor scores into one probability estimate.
// A convex combination of scores in [0,1] with weights summing to 1 stays
// in [0,1], so no further clamping happens here.
func (e engine) composite(factors []models.ScoringFactor) float64 {
	var sum float64
	for _, f := range factors {
		sum += f.Score * f.Weight
	}
	return sum
}
