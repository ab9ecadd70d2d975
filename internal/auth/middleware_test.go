package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/observability"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

func newTestApp(t *testing.T) (*fiber.App, *TokenService) {
	t.Helper()
	ts := NewTokenService("mw-secret", "ad-platform", time.Hour)
	policy := NewEndpointPolicy(PolicyTable{
		"campaigns": {
			"GET":    {domain.RoleAdmin, domain.RoleAdvertiser},
			"DELETE": {domain.RoleAdmin, domain.RoleAdvertiser},
		},
	}, AllowByDefault)
	gate := NewGate(ts, policy)
	resolver := NewOwnershipResolver(&fakeOwnerStore{owners: map[domain.ResourceType]map[int64]int64{
		domain.ResourceCampaign: {7: 20},
	}})
	mw := NewMiddleware(gate, resolver, nil, observability.NewMetrics(), nil)

	// Map returned errors the way the server's error middleware does, so
	// status codes and bodies can be asserted end to end.
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{
				"code":    domainErr.Code,
				"message": domainErr.Message,
			}})
		},
	})
	app.Get("/open", mw.Protect("stats"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/campaigns", mw.Protect("campaigns"), func(c *fiber.Ctx) error {
		subject, ok := SubjectFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"id": subject.ID})
	})
	app.Delete("/campaigns/:id", mw.Protect("campaigns"), mw.RequireOwnership(domain.ResourceCampaign, "id"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app, ts
}

func doRequest(t *testing.T, app *fiber.App, method, target, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestProtectUnlistedEndpointPassesWithoutToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "GET", "/open", "")
	if status != http.StatusOK || body != "ok" {
		t.Fatalf("got %d %q", status, body)
	}
}

func TestProtectMissingTokenBody(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "GET", "/campaigns", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("got status %d", status)
	}
	if body != `{"error":"Access token required"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestProtectInvalidTokenBody(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "GET", "/campaigns", "Bearer nonsense")
	if status != http.StatusUnauthorized {
		t.Fatalf("got status %d", status)
	}
	if body != `{"error":"Invalid or expired token"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestProtectInsufficientRoleBody(t *testing.T) {
	app, ts := newTestApp(t)

	header := bearer(t, ts, domain.Subject{ID: 10, Username: "pub", Role: domain.RolePublisher})
	status, body := doRequest(t, app, "GET", "/campaigns", header)
	if status != http.StatusForbidden {
		t.Fatalf("got status %d", status)
	}
	if body != `{"error":"Permission denied"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestProtectStoresSubject(t *testing.T) {
	app, ts := newTestApp(t)

	header := bearer(t, ts, domain.Subject{ID: 20, Username: "adv", Role: domain.RoleAdvertiser})
	status, body := doRequest(t, app, "GET", "/campaigns", header)
	if status != http.StatusOK {
		t.Fatalf("got %d %q", status, body)
	}
	if body != `{"id":20}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRequireOwnershipAllowsOwner(t *testing.T) {
	app, ts := newTestApp(t)

	header := bearer(t, ts, domain.Subject{ID: 20, Username: "adv", Role: domain.RoleAdvertiser})
	status, _ := doRequest(t, app, "DELETE", "/campaigns/7", header)
	if status != http.StatusNoContent {
		t.Fatalf("got status %d", status)
	}
}

func TestRequireOwnershipDeniesNonOwner(t *testing.T) {
	app, ts := newTestApp(t)

	// Advertiser 21 holds the right role but does not own campaign 7.
	header := bearer(t, ts, domain.Subject{ID: 21, Username: "rival", Role: domain.RoleAdvertiser})
	status, body := doRequest(t, app, "DELETE", "/campaigns/7", header)
	if status != http.StatusForbidden {
		t.Fatalf("got status %d", status)
	}
	if body != `{"error":"Permission denied"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRequireOwnershipMalformedID(t *testing.T) {
	app, ts := newTestApp(t)

	header := bearer(t, ts, domain.Subject{ID: 20, Username: "adv", Role: domain.RoleAdvertiser})
	status, body := doRequest(t, app, "DELETE", "/campaigns/abc", header)
	if status != http.StatusBadRequest {
		t.Fatalf("got status %d", status)
	}
	if !strings.Contains(body, "VALIDATION_FAILED") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRequireOwnershipMissingResource(t *testing.T) {
	app, ts := newTestApp(t)

	header := bearer(t, ts, domain.Subject{ID: 20, Username: "adv", Role: domain.RoleAdvertiser})
	status, body := doRequest(t, app, "DELETE", "/campaigns/999", header)
	if status != http.StatusForbidden {
		t.Fatalf("got status %d", status)
	}
	if body != `{"error":"Permission denied"}` {
		t.Fatalf("unexpected body %q", body)
	}
}
