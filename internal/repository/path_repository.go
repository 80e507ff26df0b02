package repository

import (
	"context"
	"errors"

	"lifepath/internal/models"
)

var ErrPathNotFound = errors.New("path template not found")

// PathRepository is the read side of the path template catalog.
type PathRepository interface {
	// GetByID returns ErrPathNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.PathTemplate, error)
	// GetByIDs returns the known templates in request order; unknown ids are
	// dropped without error.
	GetByIDs(ctx context.Context, ids []string) ([]*models.PathTemplate, error)
	List(ctx context.Context) ([]*models.PathTemplate, error)
}

// orderByRequest arranges found templates in the order ids were requested.
func orderByRequest(ids []string, found []*models.PathTemplate) []*models.PathTemplate {
	byID := make(map[string]*models.PathTemplate, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	ordered := make([]*models.PathTemplate, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered
}

const pathColumnsList = "id, name, description, education_cost, years_of_school, starting_salary, salary_growth_rate, living_cost, structure, creativity, work_life_balance, location_flexibility, skill_requirement, interest_area, risk_level"

var pathColumns = []string{
	"id", "name", "description", "education_cost", "years_of_school", "starting_salary",
	"salary_growth_rate", "living_cost", "structure", "creativity", "work_life_balance",
	"location_flexibility", "skill_requirement", "interest_area", "risk_level",
}
