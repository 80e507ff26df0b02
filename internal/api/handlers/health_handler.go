package handlers

import (
	"lifepath/internal/simulation"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	simulator *simulation.Simulator
}

func NewHealthHandler(simulator *simulation.Simulator) *HealthHandler {
	return &HealthHandler{simulator: simulator}
}

// Health godoc
// @Summary Service health
// @Description Liveness probe with simulation cache counters
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "ok",
		"simulation": h.simulator.Stats(),
	})
}
