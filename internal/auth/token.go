package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/ad-platform/internal/domain"
)

// Rejection reasons surfaced by Validate. Callers branch on these with
// errors.Is; every reason maps to a 401 upstream.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingSubject   = errors.New("token missing subject data")
)

// Claims describes the token payload: registered claims plus the embedded
// subject under "data".
type Claims struct {
	Data *domain.Subject `json:"data,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed access tokens. The secret and
// lifetime are fixed at construction; the service is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenService builds a token service with the given symmetric secret.
func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue builds and signs a token for the subject. Expiry is always
// issued-at plus the fixed lifetime.
func (ts *TokenService) Issue(subject domain.Subject) (string, time.Time, error) {
	now := ts.now()
	expiresAt := now.Add(ts.ttl)
	claims := &Claims{
		Data: &subject,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate verifies signature and expiry and returns the embedded subject.
// Signature comparison is constant-time (HMAC digest equality inside the
// jwt library).
func (ts *TokenService) Validate(tokenStr string) (*domain.Subject, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSignature
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrInvalidSignature
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidSignature
	}
	if ts.issuer != "" && claims.Issuer != ts.issuer {
		return nil, ErrInvalidSignature
	}
	if claims.Data == nil {
		return nil, ErrMissingSubject
	}
	if !claims.Data.Role.Valid() {
		return nil, ErrMissingSubject
	}
	subject := *claims.Data
	return &subject, nil
}
