package models

import "strings"

type InterestLevel string

const (
	InterestLow    InterestLevel = "low"
	InterestMedium InterestLevel = "medium"
	InterestHigh   InterestLevel = "high"
)

// ParseInterestLevel normalizes free-form input. Unknown values yield "".
func ParseInterestLevel(s string) InterestLevel {
	switch InterestLevel(strings.ToLower(strings.TrimSpace(s))) {
	case InterestLow:
		return InterestLow
	case InterestMedium:
		return InterestMedium
	case InterestHigh:
		return InterestHigh
	}
	return ""
}

// UserInputs is the starting financial state fed to the simulator.
type UserInputs struct {
	Age                  int       `json:"age"`
	StartingSavings      float64   `json:"startingSavings"`
	MonthlyLifestyleCost float64   `json:"monthlyLifestyleCost"`
	RiskTolerance        RiskLevel `json:"riskTolerance,omitempty"`
}

// UserProfile extends UserInputs with the advisory preferences used by
// scoring. Nil fields mean "no preference" and resolve to a neutral midpoint.
type UserProfile struct {
	UserInputs

	StructurePreference  *float64      `json:"structurePreference,omitempty"`
	CreativityPreference *float64      `json:"creativityPreference,omitempty"`
	WorkLifeImportance   *float64      `json:"workLifeImportance,omitempty"`
	LocationImportance   *float64      `json:"locationImportance,omitempty"`
	SkillConfidence      *float64      `json:"skillConfidence,omitempty"`
	InterestAlignment    InterestLevel `json:"interestAlignment,omitempty"`
	PrimaryInterest      string        `json:"primaryInterest,omitempty"`
}
