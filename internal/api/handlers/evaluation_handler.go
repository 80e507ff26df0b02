package handlers

import (
	"lifepath/internal/dto"
	"lifepath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EvaluationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewEvaluationHandler(recService *service.RecommendationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		recService: recService,
		logger:     logger,
	}
}

// EvaluatePaths godoc
// @Summary Evaluate life paths
// @Description Simulate, score and rank at least two paths for a user profile and recommend one
// @Tags paths
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Profile, path ids and optional preference weights"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/paths/evaluate [post]
func (h *EvaluationHandler) EvaluatePaths(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.recService.Evaluate(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to evaluate paths")
	}

	return c.JSON(resp)
}
