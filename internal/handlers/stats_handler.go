package handlers

import (
	"log"

	"panchmev/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RegisterAdminRoutes registers the stats route.
func (h *StatsHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleStats)
}

// HandleStats recomputes and returns the dashboard aggregates.
func (h *StatsHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Compute()
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
