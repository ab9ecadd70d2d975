package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/ad-platform/internal/domain"
)

func newTestGate(t *testing.T, mode PolicyMode) (*Gate, *TokenService) {
	t.Helper()
	ts := NewTokenService("gate-secret", "ad-platform", time.Hour)
	policy := NewEndpointPolicy(PolicyTable{
		"campaigns": {
			"DELETE": {domain.RoleAdmin},
			"POST":   {domain.RoleAdmin, domain.RoleAdvertiser},
		},
	}, mode)
	return NewGate(ts, policy), ts
}

func bearer(t *testing.T, ts *TokenService, subject domain.Subject) string {
	t.Helper()
	token, _, err := ts.Issue(subject)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return "Bearer " + token
}

func TestGateUnprotectedEndpoint(t *testing.T) {
	gate, _ := newTestGate(t, AllowByDefault)

	// No policy entry, no token: allowed anonymously.
	subject, err := gate.Authorize("stats", "GET", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != nil {
		t.Fatalf("expected anonymous result, got %+v", subject)
	}
}

func TestGateDenyByDefaultMode(t *testing.T) {
	gate, ts := newTestGate(t, DenyByDefault)

	if got := gate.Policy().Mode(); got != DenyByDefault {
		t.Fatalf("mode = %q", got)
	}
	if _, err := gate.Authorize("stats", "GET", ""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("got %v, want ErrMissingToken", err)
	}

	header := bearer(t, ts, domain.Subject{ID: 1, Username: "root", Role: domain.RoleAdmin})
	if _, err := gate.Authorize("stats", "GET", header); !errors.Is(err, ErrInsufficientRole) {
		t.Fatalf("got %v, want ErrInsufficientRole", err)
	}
}

func TestGateMissingToken(t *testing.T) {
	gate, _ := newTestGate(t, AllowByDefault)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz"} {
		if _, err := gate.Authorize("campaigns", "DELETE", header); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("header %q: got %v, want ErrMissingToken", header, err)
		}
	}
}

func TestGateInvalidToken(t *testing.T) {
	gate, _ := newTestGate(t, AllowByDefault)

	if _, err := gate.Authorize("campaigns", "DELETE", "Bearer garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestGateExpiredToken(t *testing.T) {
	gate, ts := newTestGate(t, AllowByDefault)

	past := time.Now().Add(-2 * time.Hour)
	ts.now = func() time.Time { return past }
	header := bearer(t, ts, domain.Subject{ID: 1, Username: "root", Role: domain.RoleAdmin})
	ts.now = time.Now

	if _, err := gate.Authorize("campaigns", "DELETE", header); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestGateInsufficientRole(t *testing.T) {
	gate, ts := newTestGate(t, AllowByDefault)

	header := bearer(t, ts, domain.Subject{ID: 7, Username: "buyer", Role: domain.RoleAdvertiser})
	if _, err := gate.Authorize("campaigns", "DELETE", header); !errors.Is(err, ErrInsufficientRole) {
		t.Fatalf("got %v, want ErrInsufficientRole", err)
	}
}

func TestGateAuthorized(t *testing.T) {
	gate, ts := newTestGate(t, AllowByDefault)

	header := bearer(t, ts, domain.Subject{ID: 7, Username: "buyer", Role: domain.RoleAdvertiser})
	subject, err := gate.Authorize("campaigns", "POST", header)
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if subject == nil || subject.ID != 7 || subject.Role != domain.RoleAdvertiser {
		t.Fatalf("unexpected subject: %+v", subject)
	}
}

func TestGateBearerSchemeCaseInsensitive(t *testing.T) {
	gate, ts := newTestGate(t, AllowByDefault)

	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "root", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := gate.Authorize("campaigns", "DELETE", "bearer "+token); err != nil {
		t.Fatalf("lower-case scheme rejected: %v", err)
	}
}
