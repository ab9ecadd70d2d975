package events

import (
	"time"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded  EventType = "login_succeeded"
	EventLoginFailed     EventType = "login_failed"
	EventAccessDenied    EventType = "access_denied"
	EventResourceCreated EventType = "resource_created"
	EventResourceUpdated EventType = "resource_updated"
	EventResourceDeleted EventType = "resource_deleted"
)

// Event represents an auditable occurrence emitted by the gateway.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Actor     *domain.Subject `json:"actor,omitempty"`
	Resource  string          `json:"resource,omitempty"`
	Method    string          `json:"method,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   interface{}     `json:"payload,omitempty"`
}

// AccessDeniedPayload payload.
type AccessDeniedPayload struct {
	Reason string `json:"reason"`
	Path   string `json:"path"`
}

// LoginPayload payload.
type LoginPayload struct {
	Username string `json:"username"`
}

// ResourceMutationPayload payload.
type ResourceMutationPayload struct {
	ResourceType string `json:"resource_type"`
	ResourceID   int64  `json:"resource_id"`
}
