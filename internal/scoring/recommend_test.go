package scoring

import (
	"strings"
	"testing"

	"lifepath/internal/models"
)

func scoredPath(id string, f, l, ti, a int, w models.PreferenceWeights) models.ScoredPath {
	s := models.Scores{Financial: f, Lifestyle: l, TimeIndependence: ti, Alignment: a}
	return models.ScoredPath{ID: id, Name: strings.ToUpper(id), Scores: s, OverallScore: CombineScores(s, w)}
}

func TestRecommendationWithDominantPath(t *testing.T) {
	w := DefaultWeights()
	a := scoredPath("a", 90, 40, 80, 60, w)
	b := scoredPath("b", 40, 90, 30, 50, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{b, a}, ResolveProfile(&models.UserProfile{}), w)

	if rec.BestOverall.ID != "a" || rec.BestOverall.Score != 68 {
		t.Fatalf("expected a (68) to win, got %+v", rec.BestOverall)
	}
	if rec.BestFinancial.ID != "a" || rec.BestLifestyle.ID != "b" {
		t.Errorf("unexpected dimension picks: financial=%s lifestyle=%s", rec.BestFinancial.ID, rec.BestLifestyle.ID)
	}
	if rec.BestLowRisk.ID != "b" || rec.BestLowRisk.Score != 64 {
		t.Errorf("expected b (64) as low-risk pick, got %+v", rec.BestLowRisk)
	}
	if len(rec.Tradeoffs) != 1 {
		t.Fatalf("expected exactly one tradeoff, got %+v", rec.Tradeoffs)
	}
	tr := rec.Tradeoffs[0]
	if tr.PathID != "b" || tr.Dimension != models.DimensionLifestyle || tr.Gap != 50 {
		t.Errorf("unexpected tradeoff %+v", tr)
	}
	if len(rec.AllRanked) != 2 || rec.AllRanked[0].ID != "a" || rec.AllRanked[1].ID != "b" {
		t.Errorf("unexpected ranking %+v", rec.AllRanked)
	}
}

func TestRecommendationReasoning(t *testing.T) {
	w := DefaultWeights()
	a := scoredPath("a", 90, 40, 80, 60, w)
	b := scoredPath("b", 40, 90, 30, 50, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{a, b}, nil, w)

	for _, want := range []string{
		"A is the strongest overall fit with a score of 68/100.",
		"Key Strengths: Financial Outlook (90), Time to Independence (80).",
		"Considerations: Lifestyle Fit (40).",
		closingSentences[models.DimensionFinancial],
	} {
		if !strings.Contains(rec.Reasoning, want) {
			t.Errorf("reasoning %q missing %q", rec.Reasoning, want)
		}
	}
}

func TestRecommendationClosingSentenceNeedsStrongScore(t *testing.T) {
	w := models.PreferenceWeights{FinancialWeight: 10, LifestyleWeight: 60, TimeWeight: 10, AlignmentWeight: 20}
	a := scoredPath("a", 95, 60, 95, 95, w)
	b := scoredPath("b", 10, 65, 10, 10, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{a, b}, nil, w)
	if rec.BestOverall.ID != "a" {
		t.Fatalf("expected a to win, got %s", rec.BestOverall.ID)
	}
	for _, s := range closingSentences {
		if strings.Contains(rec.Reasoning, s) {
			t.Fatalf("expected no closing sentence when the top-weighted dimension is weak, got %q", rec.Reasoning)
		}
	}

	w.LifestyleWeight = 5
	w.AlignmentWeight = 70
	rec = GenerateFinalRecommendation([]models.ScoredPath{a, b}, nil, w)
	if !strings.HasSuffix(rec.Reasoning, closingSentences[models.DimensionAlignment]) {
		t.Fatalf("expected alignment closing sentence, got %q", rec.Reasoning)
	}
}

func TestRecommendationTradeoffsCappedInIterationOrder(t *testing.T) {
	w := models.PreferenceWeights{AlignmentWeight: 1}
	best := scoredPath("best", 10, 10, 10, 100, w)
	second := scoredPath("second", 50, 60, 70, 20, w)
	third := scoredPath("third", 99, 99, 99, 10, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{best, second, third}, nil, w)

	if len(rec.Tradeoffs) != 3 {
		t.Fatalf("expected 3 tradeoffs, got %d", len(rec.Tradeoffs))
	}
	wantDims := []models.Dimension{models.DimensionFinancial, models.DimensionLifestyle, models.DimensionTimeIndependence}
	for i, tr := range rec.Tradeoffs {
		if tr.PathID != "second" || tr.Dimension != wantDims[i] {
			t.Errorf("tradeoff %d: got %s/%s, want second/%s", i, tr.PathID, tr.Dimension, wantDims[i])
		}
	}
	if rec.Tradeoffs[0].Gap != 40 {
		t.Errorf("expected financial gap 40, got %d", rec.Tradeoffs[0].Gap)
	}
}

func TestRecommendationTradeoffThresholdIsStrict(t *testing.T) {
	w := DefaultWeights()
	a := scoredPath("a", 50, 50, 50, 90, w)
	b := scoredPath("b", 65, 50, 50, 50, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{a, b}, nil, w)
	if len(rec.Tradeoffs) != 0 {
		t.Fatalf("a 15 point gap must not produce a tradeoff, got %+v", rec.Tradeoffs)
	}
}

func TestRecommendationTiesKeepInputOrder(t *testing.T) {
	w := DefaultWeights()
	first := scoredPath("first", 60, 60, 60, 60, w)
	second := scoredPath("second", 60, 60, 60, 60, w)

	rec := GenerateFinalRecommendation([]models.ScoredPath{first, second}, nil, w)
	if rec.BestOverall.ID != "first" || rec.BestFinancial.ID != "first" || rec.BestLowRisk.ID != "first" {
		t.Fatalf("expected ties to resolve to the first path, got %+v", rec)
	}
}

func TestRecommendationNoPaths(t *testing.T) {
	rec := GenerateFinalRecommendation(nil, nil, DefaultWeights())
	if rec.BestOverall != nil || rec.Reasoning != NoPathsReasoning {
		t.Fatalf("unexpected empty recommendation %+v", rec)
	}
	if rec.Tradeoffs == nil || rec.AllRanked == nil {
		t.Fatal("expected empty, non-nil lists")
	}
}

func TestRecommendationLowRiskNote(t *testing.T) {
	w := DefaultWeights()
	a := scoredPath("a", 90, 40, 80, 60, w)
	b := scoredPath("b", 40, 90, 30, 50, w)
	profile := ResolveProfile(&models.UserProfile{UserInputs: models.UserInputs{RiskTolerance: models.RiskLow}})

	rec := GenerateFinalRecommendation([]models.ScoredPath{a, b}, profile, w)
	if !strings.Contains(rec.Reasoning, "B is the safer alternative") {
		t.Fatalf("expected a low-risk note, got %q", rec.Reasoning)
	}
}
