package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/events"
	"github.com/spec-kit/ad-platform/internal/repository"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

// CampaignService orchestrates campaign operations behind the gate.
type CampaignService struct {
	campaigns   repository.CampaignRepository
	advertisers repository.AdvertiserRepository
	dispatcher  events.Dispatcher
}

// NewCampaignService builds the service.
func NewCampaignService(campaigns repository.CampaignRepository, advertisers repository.AdvertiserRepository, dispatcher events.Dispatcher) *CampaignService {
	return &CampaignService{campaigns: campaigns, advertisers: advertisers, dispatcher: dispatcher}
}

// CampaignInput carries campaign creation fields. AdvertiserID is only
// honored for admin callers; other callers create under their own profile.
type CampaignInput struct {
	AdvertiserID int64
	Name         string
	DailyBudget  int64
}

// Create inserts a campaign for the subject's advertiser profile.
func (s *CampaignService) Create(ctx context.Context, subject domain.Subject, input CampaignInput) (*domain.Campaign, error) {
	advertiserID := input.AdvertiserID
	if !subject.IsAdmin() {
		advertiser, err := s.advertisers.GetByUserID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewForbidden("no advertiser profile")
			}
			return nil, err
		}
		advertiserID = advertiser.ID
	}

	campaign := &domain.Campaign{
		AdvertiserID: advertiserID,
		Name:         input.Name,
		DailyBudget:  input.DailyBudget,
		State:        domain.CampaignStateDraft,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceCreated, subject, campaign.ID)
	return campaign, nil
}

// Get fetches a campaign by id.
func (s *CampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

// List returns the campaigns of the subject's advertiser profile.
func (s *CampaignService) List(ctx context.Context, subject domain.Subject, advertiserID int64) ([]domain.Campaign, error) {
	if !subject.IsAdmin() {
		advertiser, err := s.advertisers.GetByUserID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewForbidden("no advertiser profile")
			}
			return nil, err
		}
		advertiserID = advertiser.ID
	}
	return s.campaigns.ListByAdvertiser(ctx, advertiserID)
}

// Update persists name, budget and state changes.
func (s *CampaignService) Update(ctx context.Context, subject domain.Subject, id int64, name string, dailyBudget int64, state domain.CampaignState) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		campaign.Name = name
	}
	if dailyBudget > 0 {
		campaign.DailyBudget = dailyBudget
	}
	if state != "" {
		campaign.State = state
	}
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceUpdated, subject, campaign.ID)
	return campaign, nil
}

// Delete removes a campaign.
func (s *CampaignService) Delete(ctx context.Context, subject domain.Subject, id int64) error {
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return err
	}
	s.publishMutation(ctx, events.EventResourceDeleted, subject, id)
	return nil
}

func (s *CampaignService) publishMutation(ctx context.Context, eventType events.EventType, subject domain.Subject, campaignID int64) {
	if s.dispatcher == nil {
		return
	}
	actor := subject
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     &actor,
		Resource:  string(domain.ResourceCampaign),
		Timestamp: time.Now(),
		Payload: events.ResourceMutationPayload{
			ResourceType: string(domain.ResourceCampaign),
			ResourceID:   campaignID,
		},
	})
}
