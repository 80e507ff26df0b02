package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"lifepath/internal/models"
)

const (
	strengthThreshold      = 70
	considerationThreshold = 50
	tradeoffGap            = 15
	maxTradeoffs           = 3
)

// NoPathsReasoning is the reasoning text of an empty evaluation.
const NoPathsReasoning = "No paths available to evaluate. Add at least one known path to get a recommendation."

var (
	allDimensions      = []models.Dimension{models.DimensionFinancial, models.DimensionLifestyle, models.DimensionTimeIndependence, models.DimensionAlignment}
	tradeoffDimensions = []models.Dimension{models.DimensionFinancial, models.DimensionLifestyle, models.DimensionTimeIndependence}
)

var closingSentences = map[models.Dimension]string{
	models.DimensionFinancial:        "It delivers on the financial outcomes you weighted most heavily.",
	models.DimensionLifestyle:        "It matches the day-to-day lifestyle you said matters most.",
	models.DimensionTimeIndependence: "It gets you to financial independence quickly, which you prioritized.",
	models.DimensionAlignment:        "It fits the personal strengths and interests you ranked highest.",
}

// GenerateFinalRecommendation ranks scored paths and explains the winner.
// Ties keep the input order. An empty input yields a recommendation with no
// picks rather than an error.
func GenerateFinalRecommendation(scored []models.ScoredPath, profile *ResolvedProfile, weights models.PreferenceWeights) models.Recommendation {
	if len(scored) == 0 {
		return models.Recommendation{
			Reasoning: NoPathsReasoning,
			Tradeoffs: []models.Tradeoff{},
			AllRanked: []models.ScoredPath{},
		}
	}

	ranked := make([]models.ScoredPath, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})
	best := ranked[0]

	rec := models.Recommendation{
		BestOverall: &models.PathPick{ID: best.ID, Name: best.Name, Score: best.OverallScore},
		BestFinancial: pickBest(scored, func(p models.ScoredPath) float64 {
			return float64(p.Scores.Financial)
		}),
		BestLifestyle: pickBest(scored, func(p models.ScoredPath) float64 {
			return float64(p.Scores.Lifestyle)
		}),
		BestLowRisk: pickBest(scored, lowRiskScore),
		AllRanked:   ranked,
	}
	rec.Reasoning = buildReasoning(best, rec.BestLowRisk, profile, weights)
	rec.Tradeoffs = buildTradeoffs(best, ranked[1:])
	return rec
}

// lowRiskScore favors paths that fit the person over paths that pay most.
func lowRiskScore(p models.ScoredPath) float64 {
	return 0.4*float64(p.Scores.Alignment) + 0.4*float64(p.Scores.Lifestyle) + 0.2*float64(p.Scores.Financial)
}

// pickBest returns the first path with the highest score, matching a stable
// descending sort.
func pickBest(paths []models.ScoredPath, score func(models.ScoredPath) float64) *models.PathPick {
	bestIdx := 0
	bestScore := score(paths[0])
	for i := 1; i < len(paths); i++ {
		if s := score(paths[i]); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	p := paths[bestIdx]
	return &models.PathPick{ID: p.ID, Name: p.Name, Score: int(math.Round(bestScore))}
}

func buildReasoning(best models.ScoredPath, lowRisk *models.PathPick, profile *ResolvedProfile, weights models.PreferenceWeights) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your profile and priorities, %s is the strongest overall fit with a score of %d/100.", best.Name, best.OverallScore)

	var strengths, considerations []string
	for _, d := range allDimensions {
		v := best.Scores.Get(d)
		if v >= strengthThreshold {
			strengths = append(strengths, fmt.Sprintf("%s (%d)", d.Label(), v))
		}
		if v < considerationThreshold {
			considerations = append(considerations, fmt.Sprintf("%s (%d)", d.Label(), v))
		}
	}
	if len(strengths) > 0 {
		b.WriteString(" Key Strengths: " + strings.Join(strengths, ", ") + ".")
	}
	if len(considerations) > 0 {
		b.WriteString(" Considerations: " + strings.Join(considerations, ", ") + ".")
	}

	top := heaviestDimension(weights)
	if best.Scores.Get(top) >= strengthThreshold {
		b.WriteString(" " + closingSentences[top])
	}

	if profile != nil && profile.RiskTolerance == models.RiskLow && lowRisk != nil && lowRisk.ID != best.ID {
		fmt.Fprintf(&b, " Given your low risk tolerance, %s is the safer alternative worth a look.", lowRisk.Name)
	}
	return b.String()
}

// heaviestDimension returns the dimension with the largest raw weight; ties
// go to the earlier dimension.
func heaviestDimension(w models.PreferenceWeights) models.Dimension {
	top := allDimensions[0]
	for _, d := range allDimensions[1:] {
		if w.Get(d) > w.Get(top) {
			top = d
		}
	}
	return top
}

func buildTradeoffs(best models.ScoredPath, others []models.ScoredPath) []models.Tradeoff {
	tradeoffs := []models.Tradeoff{}
	for _, p := range others {
		for _, d := range tradeoffDimensions {
			gap := p.Scores.Get(d) - best.Scores.Get(d)
			if gap <= tradeoffGap {
				continue
			}
			tradeoffs = append(tradeoffs, models.Tradeoff{
				PathID:      p.ID,
				PathName:    p.Name,
				Dimension:   d,
				Gap:         gap,
				Description: fmt.Sprintf("%s scores %d points higher than %s on %s.", p.Name, gap, best.Name, d.Label()),
			})
			if len(tradeoffs) == maxTradeoffs {
				return tradeoffs
			}
		}
	}
	return tradeoffs
}
