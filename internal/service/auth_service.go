package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ad-platform/internal/auth"
	"github.com/spec-kit/ad-platform/internal/config"
	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/events"
	"github.com/spec-kit/ad-platform/internal/repository"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

// AuthService coordinates login and account provisioning flows.
type AuthService struct {
	users       repository.UserRepository
	publishers  repository.PublisherRepository
	advertisers repository.AdvertiserRepository
	tokens      *auth.TokenService
	dispatcher  events.Dispatcher
	bcryptCost  int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	PublisherRepo  repository.PublisherRepository
	AdvertiserRepo repository.AdvertiserRepository
	Dispatcher     events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:       deps.UserRepo,
		publishers:  deps.PublisherRepo,
		advertisers: deps.AdvertiserRepo,
		tokens:      auth.NewTokenService(cfg.JWTSecret, cfg.Issuer, cfg.TokenTTL()),
		dispatcher:  deps.Dispatcher,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Login authenticates an account by username and password and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("account suspended")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.publishLoginEvent(ctx, events.EventLoginFailed, nil, username)
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.Issue(user.Subject())
	if err != nil {
		return nil, "", time.Time{}, err
	}

	subject := user.Subject()
	s.publishLoginEvent(ctx, events.EventLoginSucceeded, &subject, username)
	return user, token, expiresAt, nil
}

// AccountInput carries the fields for admin-driven account creation.
type AccountInput struct {
	Username    string
	Email       string
	Password    string
	Role        domain.Role
	CompanyName string
}

// CreateAccount provisions a user and, for publisher or advertiser roles,
// the matching profile row.
func (s *AuthService) CreateAccount(ctx context.Context, input AccountInput) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewConflict("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	switch input.Role {
	case domain.RolePublisher:
		publisher := &domain.Publisher{UserID: user.ID, CompanyName: input.CompanyName}
		if err := s.publishers.Create(ctx, publisher); err != nil {
			return nil, err
		}
	case domain.RoleAdvertiser:
		advertiser := &domain.Advertiser{UserID: user.ID, CompanyName: input.CompanyName}
		if err := s.advertisers.Create(ctx, advertiser); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// TokenService exposes the underlying token service for gate construction.
func (s *AuthService) TokenService() *auth.TokenService {
	return s.tokens
}

func (s *AuthService) publishLoginEvent(ctx context.Context, eventType events.EventType, actor *domain.Subject, username string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   events.LoginPayload{Username: username},
	})
}
