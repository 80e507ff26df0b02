package dto

import "lifepath/internal/models"

type EvaluateRequest struct {
	UserProfile       *models.UserProfile       `json:"userProfile"`
	Paths             []string                  `json:"paths"`
	PreferenceWeights *models.PreferenceWeights `json:"preferenceWeights,omitempty"`
}

type EvaluateResponse struct {
	EvaluationID   string                `json:"evaluationId"`
	Recommendation models.Recommendation `json:"recommendation"`
	ScoredPaths    []models.ScoredPath   `json:"scoredPaths"`
}
