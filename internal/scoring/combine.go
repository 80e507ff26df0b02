package scoring

import (
	"math"

	"lifepath/internal/models"
)

// DefaultWeights gives every dimension equal importance.
func DefaultWeights() models.PreferenceWeights {
	return models.PreferenceWeights{
		FinancialWeight: 25,
		LifestyleWeight: 25,
		TimeWeight:      25,
		AlignmentWeight: 25,
	}
}

// NormalizeWeights rescales w to fractions summing to 1. When the total is
// zero, negative or not finite the weights carry no usable preference and an
// even split is returned instead.
func NormalizeWeights(w models.PreferenceWeights) models.PreferenceWeights {
	sum := w.FinancialWeight + w.LifestyleWeight + w.TimeWeight + w.AlignmentWeight
	if !(sum > 0) || math.IsInf(sum, 0) {
		return models.PreferenceWeights{
			FinancialWeight: 0.25,
			LifestyleWeight: 0.25,
			TimeWeight:      0.25,
			AlignmentWeight: 0.25,
		}
	}
	return models.PreferenceWeights{
		FinancialWeight: w.FinancialWeight / sum,
		LifestyleWeight: w.LifestyleWeight / sum,
		TimeWeight:      w.TimeWeight / sum,
		AlignmentWeight: w.AlignmentWeight / sum,
	}
}

// CombineScores returns the weighted overall score in [0, 100].
func CombineScores(s models.Scores, w models.PreferenceWeights) int {
	n := NormalizeWeights(w)
	overall := float64(s.Financial)*n.FinancialWeight +
		float64(s.Lifestyle)*n.LifestyleWeight +
		float64(s.TimeIndependence)*n.TimeWeight +
		float64(s.Alignment)*n.AlignmentWeight
	return toScore(overall)
}
