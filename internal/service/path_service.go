package service

import (
	"context"
	"errors"
	"fmt"

	"lifepath/internal/models"
	"lifepath/internal/repository"

	"go.uber.org/zap"
)

// PathService exposes the catalog so clients can pick path ids.
type PathService struct {
	pathRepo repository.PathRepository
	logger   *zap.Logger
}

func NewPathService(pathRepo repository.PathRepository, logger *zap.Logger) *PathService {
	return &PathService{
		pathRepo: pathRepo,
		logger:   logger,
	}
}

func (s *PathService) List(ctx context.Context) ([]*models.PathTemplate, error) {
	paths, err := s.pathRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list paths: %w", err)
	}
	if paths == nil {
		paths = []*models.PathTemplate{}
	}
	return paths, nil
}

// Get returns repository.ErrPathNotFound for unknown ids.
func (s *PathService) Get(ctx context.Context, id string) (*models.PathTemplate, error) {
	path, err := s.pathRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPathNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get path: %w", err)
	}
	return path, nil
}
