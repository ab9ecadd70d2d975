package service

import (
	"context"

	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/repository"
)

// AccountService exposes account lookup and maintenance for the admin surface.
type AccountService struct {
	users       repository.UserRepository
	publishers  repository.PublisherRepository
	advertisers repository.AdvertiserRepository
}

// NewAccountService builds the service.
func NewAccountService(users repository.UserRepository, publishers repository.PublisherRepository, advertisers repository.AdvertiserRepository) *AccountService {
	return &AccountService{users: users, publishers: publishers, advertisers: advertisers}
}

// GetUser fetches a user by id.
func (s *AccountService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUser persists email and status changes for an account.
func (s *AccountService) UpdateUser(ctx context.Context, id int64, email string, status domain.UserStatus) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email != "" {
		user.Email = email
	}
	if status != "" {
		user.Status = status
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *AccountService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// GetPublisher fetches a publisher profile by id.
func (s *AccountService) GetPublisher(ctx context.Context, id int64) (*domain.Publisher, error) {
	return s.publishers.GetByID(ctx, id)
}

// UpdatePublisher persists profile changes.
func (s *AccountService) UpdatePublisher(ctx context.Context, id int64, companyName, payoutEmail string) (*domain.Publisher, error) {
	publisher, err := s.publishers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if companyName != "" {
		publisher.CompanyName = companyName
	}
	if payoutEmail != "" {
		publisher.PayoutEmail = payoutEmail
	}
	if err := s.publishers.Update(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}

// DeletePublisher removes a publisher profile.
func (s *AccountService) DeletePublisher(ctx context.Context, id int64) error {
	return s.publishers.Delete(ctx, id)
}

// GetAdvertiser fetches an advertiser profile by id.
func (s *AccountService) GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error) {
	return s.advertisers.GetByID(ctx, id)
}

// UpdateAdvertiser persists profile changes.
func (s *AccountService) UpdateAdvertiser(ctx context.Context, id int64, companyName string) (*domain.Advertiser, error) {
	advertiser, err := s.advertisers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if companyName != "" {
		advertiser.CompanyName = companyName
	}
	if err := s.advertisers.Update(ctx, advertiser); err != nil {
		return nil, err
	}
	return advertiser, nil
}

// DeleteAdvertiser removes an advertiser profile.
func (s *AccountService) DeleteAdvertiser(ctx context.Context, id int64) error {
	return s.advertisers.Delete(ctx, id)
}
