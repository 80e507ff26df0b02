package scoring

import (
	"math"
	"strings"

	"lifepath/internal/models"
)

// Normalization ceilings for the financial score.
const (
	netCashCeiling  = 200000.0
	peakDebtCeiling = 100000.0
	earningsCeiling = 500000.0
)

// ScoreFinancial rates a projection on money outcomes. It returns 0 for a
// missing or empty result.
func ScoreFinancial(result *models.SimulationResult) int {
	if result == nil || result.HorizonYears <= 0 {
		return 0
	}
	s := result.Summary

	netCash := clamp(s.NetCashAtHorizon/netCashCeiling*100, 0, 100)
	debt := clamp(100-s.PeakDebt/peakDebtCeiling*100, 0, 100)
	breakEven := 0.0
	if result.BreakEvenYear != nil {
		breakEven = clamp(100-float64(*result.BreakEvenYear)/10*100, 0, 100)
	}
	income := clamp(s.TotalEarnings/earningsCeiling*100, 0, 100)

	return toScore(0.4*netCash + 0.3*debt + 0.2*breakEven + 0.1*income)
}

// ScoreLifestyle rates how a path's day-to-day character fits the user.
// Returns 50 when either side is missing.
func ScoreLifestyle(profile *ResolvedProfile, tpl *models.PathTemplate) int {
	t := resolveTemplate(tpl)
	if profile == nil || t == nil {
		return 50
	}

	structureMatch := 100 - math.Abs(t.structure-profile.StructurePreference)*10
	creativityMatch := 100 - math.Abs(t.creativity-profile.CreativityPreference)*10
	workLifeMatch := t.workLifeBalance * profile.WorkLifeImportance * 2
	locationMatch := t.locationFlexibility * profile.LocationImportance * 2

	score := 50.0
	score += (structureMatch - 50) * 0.30
	score += (creativityMatch - 50) * 0.25
	score += (workLifeMatch - 50) * 0.25
	score += (locationMatch - 50) * 0.20
	return toScore(score)
}

// ScoreTimeIndependence rewards early break-even and short schooling.
func ScoreTimeIndependence(result *models.SimulationResult) int {
	if result == nil {
		return 0
	}
	breakEven := 0.0
	if result.BreakEvenYear != nil {
		breakEven = clamp(100-float64(*result.BreakEvenYear)*10, 0, 100)
	}
	school := clamp(100-float64(result.YearsOfSchool)*16.67, 0, 100)
	return toScore(0.6*breakEven + 0.4*school)
}

// ScoreAlignment rates fit on skills, interests and risk appetite. Returns 50
// when either side is missing.
func ScoreAlignment(profile *ResolvedProfile, tpl *models.PathTemplate) int {
	t := resolveTemplate(tpl)
	if profile == nil || t == nil {
		return 50
	}

	skillMatch := 100.0
	if profile.SkillConfidence < t.skillRequirement {
		skillMatch = profile.SkillConfidence / t.skillRequirement * 100
	}

	score := 50.0
	score += (skillMatch - 50) * 0.40
	score += (interestMatch(profile, t) - 50) * 0.35
	score += (riskMatch(profile.RiskTolerance, t.riskLevel) - 50) * 0.25
	return toScore(score)
}

func interestMatch(profile *ResolvedProfile, t *resolvedTemplate) float64 {
	switch {
	case profile.InterestAlignment == models.InterestHigh &&
		t.interestArea != "" && strings.EqualFold(t.interestArea, profile.PrimaryInterest):
		return 100
	case profile.InterestAlignment == models.InterestMedium:
		return 70
	case profile.InterestAlignment == models.InterestLow:
		return 30
	}
	return 50
}

func riskMatch(tolerance, level models.RiskLevel) float64 {
	if tolerance == level {
		return 100
	}
	if tolerance == models.RiskMedium || level == models.RiskMedium {
		return 70
	}
	return 30
}

// ScorePath computes all four dimensions for one path.
func ScorePath(result *models.SimulationResult, profile *ResolvedProfile, tpl *models.PathTemplate) models.Scores {
	return models.Scores{
		Financial:        ScoreFinancial(result),
		Lifestyle:        ScoreLifestyle(profile, tpl),
		TimeIndependence: ScoreTimeIndependence(result),
		Alignment:        ScoreAlignment(profile, tpl),
	}
}

// clamp bounds v to [lo, hi]; NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toScore(v float64) int {
	return int(math.Round(clamp(v, 0, 100)))
}
