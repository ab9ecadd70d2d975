package auth

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/events"
	"github.com/spec-kit/ad-platform/internal/observability"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

const subjectKey = "auth_subject"

// Denial bodies are part of the external contract and emitted verbatim.
const (
	msgMissingToken = "Access token required"
	msgInvalidToken = "Invalid or expired token"
	msgDenied       = "Permission denied"
)

// Middleware wires the authorization gate and ownership resolver into fiber.
type Middleware struct {
	gate       *Gate
	resolver   *OwnershipResolver
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewMiddleware constructs middleware. Dispatcher and metrics may be nil.
func NewMiddleware(gate *Gate, resolver *OwnershipResolver, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) *Middleware {
	return &Middleware{
		gate:       gate,
		resolver:   resolver,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Protect enforces the endpoint policy for the named resource. On success
// the authenticated subject, if any, is stored in request locals.
func (m *Middleware) Protect(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, err := m.gate.Authorize(resource, c.Method(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return m.deny(c, resource, err)
		}
		if subject == nil {
			m.metrics.RecordAuthDecision(resource, c.Method(), "anonymous")
			return c.Next()
		}
		m.metrics.RecordAuthDecision(resource, c.Method(), "granted")
		c.Locals(subjectKey, subject)
		return c.Next()
	}
}

// RequireOwnership confirms the authenticated subject owns the resource
// addressed by the integer route parameter. Must run after Protect.
func (m *Middleware) RequireOwnership(resourceType domain.ResourceType, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := SubjectFromContext(c)
		if !ok {
			return m.deny(c, string(resourceType), ErrMissingToken)
		}
		resourceID, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil || resourceID <= 0 {
			// Bad ids are a request-shape problem, not an authorization
			// verdict; report them like every other invalid payload.
			return apperrors.NewValidationError("invalid id", map[string]any{"param": param})
		}
		allowed, err := m.resolver.CanAccess(c.UserContext(), *subject, resourceType, resourceID)
		if err != nil {
			return err
		}
		if !allowed {
			return m.deny(c, string(resourceType), ErrInsufficientRole)
		}
		return c.Next()
	}
}

func (m *Middleware) deny(c *fiber.Ctx, resource string, err error) error {
	status := http.StatusUnauthorized
	msg := msgInvalidToken
	switch {
	case errors.Is(err, ErrMissingToken):
		msg = msgMissingToken
	case errors.Is(err, ErrInsufficientRole):
		status = http.StatusForbidden
		msg = msgDenied
	}

	m.metrics.RecordAuthDecision(resource, c.Method(), err.Error())
	if m.dispatcher != nil {
		actor, _ := SubjectFromContext(c)
		_ = m.dispatcher.Publish(c.UserContext(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAccessDenied,
			Actor:     actor,
			Resource:  resource,
			Method:    c.Method(),
			Timestamp: time.Now(),
			Payload:   events.AccessDeniedPayload{Reason: err.Error(), Path: c.Path()},
		})
	}
	if m.logger != nil {
		m.logger.Debug("access denied",
			zap.String("resource", resource),
			zap.String("method", c.Method()),
			zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// SubjectFromContext retrieves the authenticated subject, if any.
func SubjectFromContext(c *fiber.Ctx) (*domain.Subject, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return nil, false
	}
	subject, ok := val.(*domain.Subject)
	return subject, ok
}
