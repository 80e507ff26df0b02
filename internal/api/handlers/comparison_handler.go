package handlers

import (
	"lifepath/internal/dto"
	"lifepath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ComparisonHandler struct {
	compService *service.ComparisonService
	logger      *zap.Logger
}

func NewComparisonHandler(compService *service.ComparisonService, logger *zap.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		compService: compService,
		logger:      logger,
	}
}

// ComparePaths godoc
// @Summary Compare path projections
// @Description Project income, net cash and debt year by year for the selected paths
// @Tags paths
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "User inputs, path ids and optional horizon"
// @Success 200 {object} dto.CompareResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/paths/compare [post]
func (h *ComparisonHandler) ComparePaths(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.compService.Compare(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compare paths")
	}

	return c.JSON(resp)
}
