package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mindconnect/mind-service/internal/persistence"
)

const readinessProbeTimeout = 2 * time.Second

// HealthHandler answers liveness and readiness probes. Readiness checks the
// two backing stores this service cannot run without degrading: postgres
// (accounts, journals, sessions) and redis (login throttling).
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Live handles GET /health/live. It answers as long as the process serves
// requests; dependencies are deliberately not consulted here.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), readinessProbeTimeout)
	defer cancel()

	checks := fiber.Map{
		"account_store": h.probe(ctx, h.postgres.Ping),
		"login_limiter": h.probe(ctx, h.redis.Ping),
	}

	for _, result := range checks {
		if result != "ok" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "DEPENDENCY_UNAVAILABLE",
					"message": "one or more dependencies unavailable",
					"details": checks,
				},
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ready",
		"service": h.serviceName,
		"checks":  checks,
	})
}

func (h *HealthHandler) probe(ctx context.Context, ping func(context.Context) error) string {
	if err := ping(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}
