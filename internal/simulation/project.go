package simulation

import (
	"math"

	"lifepath/internal/models"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Project runs the year-by-year cash/debt model for one path. It is pure and
// uncached; use Simulator.Simulate for the memoized variant. A non-positive
// horizon yields a result with empty series.
//
// Degenerate inputs (negative salary, NaN) are not clamped and flow through
// to the output.
func Project(in models.UserInputs, tpl models.PathTemplate, horizonYears int) models.SimulationResult {
	result := models.SimulationResult{
		PathID:        tpl.ID,
		HorizonYears:  horizonYears,
		YearsOfSchool: tpl.YearsOfSchool,
	}
	if horizonYears <= 0 {
		return result
	}

	result.Income = make([]float64, 0, horizonYears)
	result.EducationCost = make([]float64, 0, horizonYears)
	result.LivingCost = make([]float64, 0, horizonYears)
	result.NetCashFlow = make([]float64, 0, horizonYears)
	result.CumulativeNetWorth = make([]float64, 0, horizonYears)
	result.Debt = make([]float64, 0, horizonYears)

	annualEducation := 0.0
	if tpl.YearsOfSchool > 0 {
		annualEducation = tpl.EducationCost / float64(tpl.YearsOfSchool)
	}
	workLiving := in.MonthlyLifestyleCost * monthsPerYear
	schoolLiving := workLiving
	if tpl.LivingCost != nil {
		schoolLiving = *tpl.LivingCost
	}

	cash := in.StartingSavings
	debt := 0.0
	peakDebt := 0.0
	var totalEarnings, totalCost float64

	for year := 1; year <= horizonYears; year++ {
		var income, education, living float64
		if year <= tpl.YearsOfSchool {
			education = annualEducation
			living = schoolLiving
		} else {
			yearsWorking := year - tpl.YearsOfSchool
			income = tpl.StartingSalary * math.Pow(1+tpl.SalaryGrowthRate, float64(yearsWorking-1))
			living = workLiving
		}

		netFlow := income - living - education
		cash, debt = applyCashFlow(cash, debt, netFlow)
		peakDebt = math.Max(peakDebt, debt)

		netWorth := cash - debt
		if result.BreakEvenYear == nil && netWorth >= in.StartingSavings {
			y := year
			result.BreakEvenYear = &y
		}

		totalEarnings += income
		totalCost += living + education

		result.Income = append(result.Income, roundAmount(income))
		result.EducationCost = append(result.EducationCost, roundAmount(education))
		result.LivingCost = append(result.LivingCost, roundAmount(living))
		result.NetCashFlow = append(result.NetCashFlow, roundAmount(netFlow))
		result.CumulativeNetWorth = append(result.CumulativeNetWorth, roundAmount(netWorth))
		result.Debt = append(result.Debt, roundAmount(debt))
	}

	result.Summary = models.SimulationSummary{
		TotalEarnings:    roundAmount(totalEarnings),
		TotalCost:        roundAmount(totalCost),
		PeakDebt:         roundAmount(peakDebt),
		NetCashAtHorizon: roundAmount(cash - debt),
	}
	return result
}

// applyCashFlow moves one year's net flow through the waterfall: a surplus
// pays debt before it reaches cash, a shortfall drains cash before it becomes
// debt.
func applyCashFlow(cash, debt, netFlow float64) (float64, float64) {
	if netFlow >= 0 {
		payment := math.Min(debt, netFlow)
		return cash + (netFlow - payment), debt - payment
	}
	shortfall := -netFlow
	if cash >= shortfall {
		return cash - shortfall, debt
	}
	return 0, debt + (shortfall - cash)
}

// roundAmount rounds a reported figure to whole currency units, half away
// from zero. Non-finite values pass through untouched.
func roundAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}
