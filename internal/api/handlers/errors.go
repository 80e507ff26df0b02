package handlers

import (
	"lifepath/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps validation failures to 400 with their message and hides
// everything else behind msg with a 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, msg string) error {
	if service.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}
