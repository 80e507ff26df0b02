package models

// SimulationResult is the year-by-year projection of one path for one user.
// Index i of every series holds year i+1. Values are rounded to whole units;
// results are shared through the simulation cache and must not be mutated.
type SimulationResult struct {
	PathID        string `json:"pathId"`
	HorizonYears  int    `json:"horizonYears"`
	YearsOfSchool int    `json:"yearsOfSchool"`

	Income             []float64 `json:"income"`
	EducationCost      []float64 `json:"educationCost"`
	LivingCost         []float64 `json:"livingCost"`
	NetCashFlow        []float64 `json:"netCashFlow"`
	CumulativeNetWorth []float64 `json:"cumulativeNetWorth"`
	Debt               []float64 `json:"debt"`

	// BreakEvenYear is 1-based; nil when net worth never reaches the
	// starting savings within the horizon.
	BreakEvenYear *int              `json:"breakEvenYear"`
	Summary       SimulationSummary `json:"summary"`
}

type SimulationSummary struct {
	TotalEarnings    float64 `json:"totalEarnings"`
	TotalCost        float64 `json:"totalCost"`
	PeakDebt         float64 `json:"peakDebt"`
	NetCashAtHorizon float64 `json:"netCashAtHorizon"`
}
