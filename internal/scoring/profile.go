package scoring

import (
	"math"
	"strings"

	"lifepath/internal/models"
)

// neutral is the midpoint substituted for any absent 1-10 attribute.
const neutral = 5.0

// ResolvedProfile is a UserProfile with every default filled in.
type ResolvedProfile struct {
	StructurePreference  float64
	CreativityPreference float64
	WorkLifeImportance   float64
	LocationImportance   float64
	SkillConfidence      float64
	InterestAlignment    models.InterestLevel
	PrimaryInterest      string
	RiskTolerance        models.RiskLevel
}

// ResolveProfile fills absent or non-finite preferences with neutral values.
// A nil profile resolves to nil so scorers can report their "no profile"
// default.
func ResolveProfile(p *models.UserProfile) *ResolvedProfile {
	if p == nil {
		return nil
	}
	interest := models.ParseInterestLevel(string(p.InterestAlignment))
	if interest == "" {
		interest = models.InterestMedium
	}
	return &ResolvedProfile{
		StructurePreference:  orNeutral(p.StructurePreference),
		CreativityPreference: orNeutral(p.CreativityPreference),
		WorkLifeImportance:   orNeutral(p.WorkLifeImportance),
		LocationImportance:   orNeutral(p.LocationImportance),
		SkillConfidence:      orNeutral(p.SkillConfidence),
		InterestAlignment:    interest,
		PrimaryInterest:      strings.TrimSpace(p.PrimaryInterest),
		RiskTolerance:        riskOrMedium(p.RiskTolerance),
	}
}

type resolvedTemplate struct {
	structure           float64
	creativity          float64
	workLifeBalance     float64
	locationFlexibility float64
	skillRequirement    float64
	interestArea        string
	riskLevel           models.RiskLevel
}

func resolveTemplate(t *models.PathTemplate) *resolvedTemplate {
	if t == nil {
		return nil
	}
	return &resolvedTemplate{
		structure:           orNeutral(t.Structure),
		creativity:          orNeutral(t.Creativity),
		workLifeBalance:     orNeutral(t.WorkLifeBalance),
		locationFlexibility: orNeutral(t.LocationFlexibility),
		skillRequirement:    orNeutral(t.SkillRequirement),
		interestArea:        strings.TrimSpace(t.InterestArea),
		riskLevel:           riskOrMedium(t.RiskLevel),
	}
}

func orNeutral(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return neutral
	}
	return *v
}

func riskOrMedium(r models.RiskLevel) models.RiskLevel {
	if parsed := models.ParseRiskLevel(string(r)); parsed != "" {
		return parsed
	}
	return models.RiskMedium
}
