package handler

import (
	"time"

	"go-product-catalog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	repo repository.ProductRepository
}

func NewHealthHandler(repo repository.ProductRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Check reports liveness plus database reachability.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.repo.Ping(); err != nil {
		return c.Status(503).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "product-service",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
