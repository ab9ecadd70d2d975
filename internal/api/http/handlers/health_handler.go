package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/persistence"
)

const readinessTimeout = 2 * time.Second

// HealthHandler answers liveness and readiness probes for the gateway.
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

// Live reports that the process is up. It checks nothing downstream.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready verifies the stores authorization depends on: postgres backs the
// accounts and ownership chains, redis backs the audit trail.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	checks := fiber.Map{}
	degraded := false
	for name, ping := range map[string]func(context.Context) error{
		"postgres": h.postgres.Ping,
		"redis":    h.redis.Ping,
	} {
		if err := ping(ctx); err != nil {
			checks[name] = err.Error()
			degraded = true
			continue
		}
		checks[name] = "ok"
	}

	status := fiber.StatusOK
	state := "ready"
	if degraded {
		status = fiber.StatusServiceUnavailable
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  state,
		"service": h.serviceName,
		"checks":  checks,
	})
}
