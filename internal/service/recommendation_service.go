package service

import (
	"context"
	"fmt"

	"lifepath/internal/dto"
	"lifepath/internal/models"
	"lifepath/internal/repository"
	"lifepath/internal/scoring"
	"lifepath/internal/simulation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const minEvaluatePaths = 2

type RecommendationService struct {
	pathRepo     repository.PathRepository
	simulator    *simulation.Simulator
	horizonYears int
	logger       *zap.Logger
}

func NewRecommendationService(
	pathRepo repository.PathRepository,
	simulator *simulation.Simulator,
	horizonYears int,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		pathRepo:     pathRepo,
		simulator:    simulator,
		horizonYears: horizonYears,
		logger:       logger,
	}
}

// Evaluate simulates and scores every requested path for the profile and
// recommends one. Unknown path ids are skipped.
func (s *RecommendationService) Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	if req == nil || len(req.Paths) < minEvaluatePaths {
		return nil, ErrNotEnoughPaths
	}
	if req.UserProfile == nil {
		return nil, ErrMissingUserProfile
	}

	weights := scoring.DefaultWeights()
	if req.PreferenceWeights != nil {
		weights = *req.PreferenceWeights
	}
	profile := scoring.ResolveProfile(req.UserProfile)

	ids := uniqueIDs(req.Paths)
	templates, err := s.pathRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load paths: %w", err)
	}
	logMissingPaths(s.logger, ids, templates)

	scored := make([]models.ScoredPath, 0, len(templates))
	for _, tpl := range templates {
		result, err := s.simulator.Simulate(ctx, req.UserProfile.UserInputs, *tpl, s.horizonYears)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate path %s: %w", tpl.ID, err)
		}
		scores := scoring.ScorePath(result, profile, tpl)
		scored = append(scored, models.ScoredPath{
			ID:           tpl.ID,
			Name:         tpl.Name,
			Scores:       scores,
			OverallScore: scoring.CombineScores(scores, weights),
		})
	}

	recommendation := scoring.GenerateFinalRecommendation(scored, profile, weights)

	evaluationID := uuid.New().String()
	s.logger.Info("Paths evaluated",
		zap.String("evaluation_id", evaluationID),
		zap.Int("requested", len(ids)),
		zap.Int("scored", len(scored)),
	)

	return &dto.EvaluateResponse{
		EvaluationID:   evaluationID,
		Recommendation: recommendation,
		ScoredPaths:    scored,
	}, nil
}

func logMissingPaths(logger *zap.Logger, ids []string, found []*models.PathTemplate) {
	if len(found) == len(ids) {
		return
	}
	known := make(map[string]bool, len(found))
	for _, t := range found {
		known[t.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			logger.Warn("Unknown path id skipped", zap.String("path_id", id))
		}
	}
}
