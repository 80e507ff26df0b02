package dto

import "lifepath/internal/models"

type CompareRequest struct {
	UserInputs      *models.UserInputs `json:"userInputs"`
	SelectedPathIDs []string           `json:"selectedPathIds"`
	HorizonYears    *int               `json:"horizonYears,omitempty"`
}

type CompareResponse struct {
	Paths        []PathComparison `json:"paths"`
	HorizonYears int              `json:"horizonYears"`
}

type PathComparison struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Series        SeriesResponse  `json:"series"`
	Summary       SummaryResponse `json:"summary"`
	BreakEvenYear *int            `json:"breakEvenYear"`
}

type SeriesResponse struct {
	YearlyIncome      []Amount `json:"yearlyIncome"`
	CumulativeNetCash []Amount `json:"cumulativeNetCash"`
	YearlyDebt        []Amount `json:"yearlyDebt"`
}

type SummaryResponse struct {
	TotalEarnings    Amount `json:"totalEarnings"`
	TotalCost        Amount `json:"totalCost"`
	PeakDebt         Amount `json:"peakDebt"`
	NetCashAtHorizon Amount `json:"netCashAtHorizon"`
}

// NewPathComparison shapes a simulation result for the compare response.
func NewPathComparison(tpl *models.PathTemplate, result *models.SimulationResult) PathComparison {
	return PathComparison{
		ID:   tpl.ID,
		Name: tpl.Name,
		Series: SeriesResponse{
			YearlyIncome:      toAmounts(result.Income),
			CumulativeNetCash: toAmounts(result.CumulativeNetWorth),
			YearlyDebt:        toAmounts(result.Debt),
		},
		Summary: SummaryResponse{
			TotalEarnings:    Amount(result.Summary.TotalEarnings),
			TotalCost:        Amount(result.Summary.TotalCost),
			PeakDebt:         Amount(result.Summary.PeakDebt),
			NetCashAtHorizon: Amount(result.Summary.NetCashAtHorizon),
		},
		BreakEvenYear: result.BreakEvenYear,
	}
}
