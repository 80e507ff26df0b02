package dto

import (
	"encoding/json"
	"math"
	"testing"

	"lifepath/internal/models"
)

func TestAmountMarshalsNonFiniteAsNull(t *testing.T) {
	data, err := json.Marshal([]Amount{1500, Amount(math.NaN()), Amount(math.Inf(-1)), -0.5})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), "[1500,null,null,-0.5]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNewPathComparison(t *testing.T) {
	year := 3
	result := &models.SimulationResult{
		PathID:             "p",
		Income:             []float64{0, 50000, 51000},
		CumulativeNetWorth: []float64{-100, math.NaN(), 200},
		Debt:               []float64{100, 0, 0},
		BreakEvenYear:      &year,
		Summary:            models.SimulationSummary{TotalEarnings: 101000, PeakDebt: 100},
	}
	cmp := NewPathComparison(&models.PathTemplate{ID: "p", Name: "Path"}, result)

	data, err := json.Marshal(cmp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	series := decoded["series"].(map[string]interface{})
	net := series["cumulativeNetCash"].([]interface{})
	if net[1] != nil {
		t.Errorf("NaN should encode as null, got %v", net[1])
	}
	if decoded["breakEvenYear"].(float64) != 3 {
		t.Errorf("breakEvenYear = %v, want 3", decoded["breakEvenYear"])
	}
	if decoded["name"] != "Path" {
		t.Errorf("name = %v", decoded["name"])
	}
}
