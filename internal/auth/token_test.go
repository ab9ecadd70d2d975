package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/ad-platform/internal/domain"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", "ad-platform", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	ts := newTestTokenService()
	subject := domain.Subject{ID: 42, Username: "alice", Role: domain.RoleAdvertiser}

	token, expiresAt, err := ts.Issue(subject)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected three segments, got %d", len(parts))
	}

	got, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if *got != subject {
		t.Fatalf("subject mismatch: got %+v want %+v", *got, subject)
	}
}

func TestTokenMalformed(t *testing.T) {
	ts := newTestTokenService()

	for _, raw := range []string{"", "abc", "a.b", "a.b.c.d"} {
		if _, err := ts.Validate(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Validate(%q): got %v, want ErrTokenMalformed", raw, err)
		}
	}
}

func TestTokenTamperedClaims(t *testing.T) {
	ts := newTestTokenService()
	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Rewrite the claims segment with one byte changed, keeping valid JSON,
	// so the failure is strictly a signature mismatch.
	parts := strings.Split(token, ".")
	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode claims: %v", err)
	}
	tampered := strings.Replace(string(decoded), "alice", "mallory", 1)
	if tampered == string(decoded) {
		t.Fatal("claims tampering had no effect")
	}
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))

	if _, err := ts.Validate(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenTamperedHeader(t *testing.T) {
	ts := newTestTokenService()
	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Swap the declared algorithm in the header segment, keeping valid JSON.
	// The signature no longer covers the header, and the algorithm check
	// must refuse anything but HS256 anyway.
	parts := strings.Split(token, ".")
	decoded, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	swapped := strings.Replace(string(decoded), "HS256", "HS384", 1)
	if swapped == string(decoded) {
		t.Fatal("header tampering had no effect")
	}
	parts[0] = base64.RawURLEncoding.EncodeToString([]byte(swapped))

	if _, err := ts.Validate(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenWrongAlgorithm(t *testing.T) {
	ts := newTestTokenService()

	// Correctly signed with the right secret, but not with HS256.
	claims := &Claims{
		Data: &domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ad-platform",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ts.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenTamperedSignature(t *testing.T) {
	ts := newTestTokenService()
	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	if _, err := ts.Validate(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	ts := newTestTokenService()
	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenService("another-secret", "ad-platform", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenExpired(t *testing.T) {
	ts := newTestTokenService()

	// Issue in the past, validate against the real clock.
	past := time.Now().Add(-2 * time.Hour)
	ts.now = func() time.Time { return past }
	token, _, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	ts.now = time.Now

	if _, err := ts.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestTokenMissingSubject(t *testing.T) {
	ts := newTestTokenService()

	// A correctly signed token whose claims carry no "data" field.
	claims := jwt.RegisteredClaims{
		Issuer:    "ad-platform",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ts.Validate(token); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("got %v, want ErrMissingSubject", err)
	}
}

func TestTokenWrongIssuer(t *testing.T) {
	other := NewTokenService("test-secret", "someone-else", time.Hour)
	token, _, err := other.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	ts := newTestTokenService()
	if _, err := ts.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("got %v, want ErrInvalidSignature", err)
	}
}

func TestTokenExpiryMatchesLifetime(t *testing.T) {
	ts := NewTokenService("test-secret", "ad-platform", 30*time.Minute)
	issuedAt := time.Now()
	ts.now = func() time.Time { return issuedAt }

	_, expiresAt, err := ts.Issue(domain.Subject{ID: 1, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got := expiresAt.Sub(issuedAt); got != 30*time.Minute {
		t.Fatalf("lifetime mismatch: got %v", got)
	}
}
