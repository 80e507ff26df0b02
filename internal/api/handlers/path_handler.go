package handlers

import (
	"errors"

	"lifepath/internal/dto"
	"lifepath/internal/repository"
	"lifepath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PathHandler struct {
	pathService *service.PathService
	logger      *zap.Logger
}

func NewPathHandler(pathService *service.PathService, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		pathService: pathService,
		logger:      logger,
	}
}

// ListPaths godoc
// @Summary List life paths
// @Description List every path template in the catalog
// @Tags paths
// @Produce json
// @Success 200 {object} dto.PathListResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/paths [get]
func (h *PathHandler) ListPaths(c *fiber.Ctx) error {
	paths, err := h.pathService.List(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list paths", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list paths",
		})
	}

	return c.JSON(dto.PathListResponse{
		Paths: paths,
		Total: len(paths),
	})
}

// GetPath godoc
// @Summary Get a life path
// @Tags paths
// @Produce json
// @Param id path string true "Path ID"
// @Success 200 {object} models.PathTemplate
// @Failure 404 {object} map[string]string
// @Router /api/v1/paths/{id} [get]
func (h *PathHandler) GetPath(c *fiber.Ctx) error {
	path, err := h.pathService.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrPathNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Path not found",
		})
	}
	if err != nil {
		h.logger.Error("Failed to get path", zap.String("path_id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get path",
		})
	}

	return c.JSON(path)
}
