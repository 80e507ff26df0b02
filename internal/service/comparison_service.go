package service

import (
	"context"
	"fmt"

	"lifepath/internal/dto"
	"lifepath/internal/repository"
	"lifepath/internal/simulation"

	"go.uber.org/zap"
)

type ComparisonService struct {
	pathRepo       repository.PathRepository
	simulator      *simulation.Simulator
	defaultHorizon int
	maxHorizon     int
	logger         *zap.Logger
}

func NewComparisonService(
	pathRepo repository.PathRepository,
	simulator *simulation.Simulator,
	defaultHorizon int,
	maxHorizon int,
	logger *zap.Logger,
) *ComparisonService {
	return &ComparisonService{
		pathRepo:       pathRepo,
		simulator:      simulator,
		defaultHorizon: defaultHorizon,
		maxHorizon:     maxHorizon,
		logger:         logger,
	}
}

// Compare projects each selected path side by side. Unknown path ids are
// left out of the response.
func (s *ComparisonService) Compare(ctx context.Context, req *dto.CompareRequest) (*dto.CompareResponse, error) {
	if req == nil || req.UserInputs == nil {
		return nil, ErrMissingUserInputs
	}
	ids := uniqueIDs(req.SelectedPathIDs)
	if len(ids) == 0 {
		return nil, ErrNoPathsSelected
	}

	horizon := s.defaultHorizon
	if req.HorizonYears != nil {
		horizon = *req.HorizonYears
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: got %d", simulation.ErrInvalidHorizon, horizon)
	}
	if horizon > s.maxHorizon {
		return nil, fmt.Errorf("%w: %d > %d", ErrHorizonTooLarge, horizon, s.maxHorizon)
	}

	templates, err := s.pathRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load paths: %w", err)
	}
	logMissingPaths(s.logger, ids, templates)

	resp := &dto.CompareResponse{
		Paths:        make([]dto.PathComparison, 0, len(templates)),
		HorizonYears: horizon,
	}
	for _, tpl := range templates {
		result, err := s.simulator.Simulate(ctx, *req.UserInputs, *tpl, horizon)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate path %s: %w", tpl.ID, err)
		}
		resp.Paths = append(resp.Paths, dto.NewPathComparison(tpl, result))
	}

	s.logger.Debug("Paths compared",
		zap.Int("requested", len(ids)),
		zap.Int("compared", len(resp.Paths)),
		zap.Int("horizon_years", horizon),
	)
	return resp, nil
}
