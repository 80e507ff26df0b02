package models

import "strings"

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel normalizes free-form input. Unknown values yield "".
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow
	case RiskMedium:
		return RiskMedium
	case RiskHigh:
		return RiskHigh
	}
	return ""
}

// PathTemplate is an immutable life path definition from the catalog.
//
// EducationCost is signed: a negative value means the path pays the user
// (stipended training). LivingCost, when set, replaces the user's own cost of
// living for every school-phase year and is an annual figure.
type PathTemplate struct {
	ID               string   `db:"id" json:"id" yaml:"id"`
	Name             string   `db:"name" json:"name" yaml:"name"`
	Description      string   `db:"description" json:"description,omitempty" yaml:"description"`
	EducationCost    float64  `db:"education_cost" json:"educationCost" yaml:"educationCost"`
	YearsOfSchool    int      `db:"years_of_school" json:"yearsOfSchool" yaml:"yearsOfSchool"`
	StartingSalary   float64  `db:"starting_salary" json:"startingSalary" yaml:"startingSalary"`
	SalaryGrowthRate float64  `db:"salary_growth_rate" json:"salaryGrowthRate" yaml:"salaryGrowthRate"`
	LivingCost       *float64 `db:"living_cost" json:"livingCost,omitempty" yaml:"livingCost"`

	// Qualitative attributes, 1-10 scales unless noted. Used only by scoring.
	Structure           *float64  `db:"structure" json:"structure,omitempty" yaml:"structure"`
	Creativity          *float64  `db:"creativity" json:"creativity,omitempty" yaml:"creativity"`
	WorkLifeBalance     *float64  `db:"work_life_balance" json:"workLifeBalance,omitempty" yaml:"workLifeBalance"`
	LocationFlexibility *float64  `db:"location_flexibility" json:"locationFlexibility,omitempty" yaml:"locationFlexibility"`
	SkillRequirement    *float64  `db:"skill_requirement" json:"skillRequirement,omitempty" yaml:"skillRequirement"`
	InterestArea        string    `db:"interest_area" json:"interestArea,omitempty" yaml:"interestArea"`
	RiskLevel           RiskLevel `db:"risk_level" json:"riskLevel,omitempty" yaml:"riskLevel"`
}
