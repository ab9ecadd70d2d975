package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// Denial kinds returned by Authorize. MissingToken and InvalidToken map to
// 401, InsufficientRole to 403.
var (
	ErrMissingToken     = errors.New("access token required")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrInsufficientRole = errors.New("permission denied")
)

// Gate orchestrates the per-request authorization flow: bearer extraction,
// token validation, endpoint role check.
type Gate struct {
	tokens *TokenService
	policy *EndpointPolicy
}

// NewGate builds a gate over the given token service and policy table.
func NewGate(tokens *TokenService, policy *EndpointPolicy) *Gate {
	return &Gate{tokens: tokens, policy: policy}
}

// Policy exposes the underlying policy table.
func (g *Gate) Policy() *EndpointPolicy {
	return g.policy
}

// Authorize decides whether the request may proceed. A nil subject with a
// nil error means the endpoint is unprotected and no identity is required.
// Otherwise the returned subject is authenticated and role-authorized, or
// the error is one of the denial kinds above.
func (g *Gate) Authorize(resource, method, authorization string) (*domain.Subject, error) {
	roles, protected := g.policy.Lookup(resource, method)
	if !protected {
		return nil, nil
	}

	token, ok := extractBearer(authorization)
	if !ok {
		return nil, ErrMissingToken
	}

	subject, err := g.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, permitted := roles[subject.Role]; !permitted {
		return nil, ErrInsufficientRole
	}
	return subject, nil
}

func extractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
