package dto

import "lifepath/internal/models"

type PathListResponse struct {
	Paths []*models.PathTemplate `json:"paths"`
	Total int                    `json:"total"`
}
