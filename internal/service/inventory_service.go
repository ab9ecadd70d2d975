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

// InventoryService orchestrates publisher inventory: sites and ad zones.
// Sites are not an ownable resource type of their own; every site operation
// is authorized through the owning publisher.
type InventoryService struct {
	sites      repository.SiteRepository
	zones      repository.AdZoneRepository
	publishers repository.PublisherRepository
	dispatcher events.Dispatcher
}

// NewInventoryService builds the service.
func NewInventoryService(sites repository.SiteRepository, zones repository.AdZoneRepository, publishers repository.PublisherRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{sites: sites, zones: zones, publishers: publishers, dispatcher: dispatcher}
}

// SiteInput carries site creation fields. PublisherID is only honored for
// admin callers.
type SiteInput struct {
	PublisherID int64
	Domain      string
	Category    string
}

// CreateSite inserts a site under the subject's publisher profile.
func (s *InventoryService) CreateSite(ctx context.Context, subject domain.Subject, input SiteInput) (*domain.Site, error) {
	publisherID := input.PublisherID
	if !subject.IsAdmin() {
		publisher, err := s.publishers.GetByUserID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewForbidden("no publisher profile")
			}
			return nil, err
		}
		publisherID = publisher.ID
	}

	site := &domain.Site{
		PublisherID: publisherID,
		Domain:      input.Domain,
		Category:    input.Category,
	}
	if err := s.sites.Create(ctx, site); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceCreated, subject, "site", site.ID)
	return site, nil
}

// ListSites returns the sites of the subject's publisher profile. Admin
// callers may list any publisher by id.
func (s *InventoryService) ListSites(ctx context.Context, subject domain.Subject, publisherID int64) ([]domain.Site, error) {
	if !subject.IsAdmin() {
		publisher, err := s.publishers.GetByUserID(ctx, subject.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewForbidden("no publisher profile")
			}
			return nil, err
		}
		publisherID = publisher.ID
	}
	return s.sites.ListByPublisher(ctx, publisherID)
}

// GetSite fetches a site the subject is allowed to see.
func (s *InventoryService) GetSite(ctx context.Context, subject domain.Subject, id int64) (*domain.Site, error) {
	site, err := s.sites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkSiteAccess(ctx, subject, site); err != nil {
		return nil, err
	}
	return site, nil
}

// UpdateSite persists domain and category changes.
func (s *InventoryService) UpdateSite(ctx context.Context, subject domain.Subject, id int64, siteDomain, category string) (*domain.Site, error) {
	site, err := s.sites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkSiteAccess(ctx, subject, site); err != nil {
		return nil, err
	}
	if siteDomain != "" {
		site.Domain = siteDomain
	}
	if category != "" {
		site.Category = category
	}
	if err := s.sites.Update(ctx, site); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceUpdated, subject, "site", site.ID)
	return site, nil
}

// DeleteSite removes a site.
func (s *InventoryService) DeleteSite(ctx context.Context, subject domain.Subject, id int64) error {
	site, err := s.sites.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkSiteAccess(ctx, subject, site); err != nil {
		return err
	}
	if err := s.sites.Delete(ctx, id); err != nil {
		return err
	}
	s.publishMutation(ctx, events.EventResourceDeleted, subject, "site", id)
	return nil
}

// ZoneInput carries ad zone creation fields.
type ZoneInput struct {
	SiteID int64
	Name   string
	Width  int
	Height int
}

// CreateZone inserts an ad zone on a site the subject owns.
func (s *InventoryService) CreateZone(ctx context.Context, subject domain.Subject, input ZoneInput) (*domain.AdZone, error) {
	site, err := s.sites.GetByID(ctx, input.SiteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSiteAccess(ctx, subject, site); err != nil {
		return nil, err
	}

	zone := &domain.AdZone{
		SiteID: input.SiteID,
		Name:   input.Name,
		Width:  input.Width,
		Height: input.Height,
	}
	if err := s.zones.Create(ctx, zone); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceCreated, subject, string(domain.ResourceAdZone), zone.ID)
	return zone, nil
}

// ListZones returns the ad zones of a site the subject owns.
func (s *InventoryService) ListZones(ctx context.Context, subject domain.Subject, siteID int64) ([]domain.AdZone, error) {
	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSiteAccess(ctx, subject, site); err != nil {
		return nil, err
	}
	return s.zones.ListBySite(ctx, siteID)
}

// GetZone fetches an ad zone by id. Ownership is enforced by the route.
func (s *InventoryService) GetZone(ctx context.Context, id int64) (*domain.AdZone, error) {
	return s.zones.GetByID(ctx, id)
}

// UpdateZone persists name and size changes.
func (s *InventoryService) UpdateZone(ctx context.Context, subject domain.Subject, id int64, name string, width, height int) (*domain.AdZone, error) {
	zone, err := s.zones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		zone.Name = name
	}
	if width > 0 {
		zone.Width = width
	}
	if height > 0 {
		zone.Height = height
	}
	if err := s.zones.Update(ctx, zone); err != nil {
		return nil, err
	}
	s.publishMutation(ctx, events.EventResourceUpdated, subject, string(domain.ResourceAdZone), zone.ID)
	return zone, nil
}

// DeleteZone removes an ad zone.
func (s *InventoryService) DeleteZone(ctx context.Context, subject domain.Subject, id int64) error {
	if err := s.zones.Delete(ctx, id); err != nil {
		return err
	}
	s.publishMutation(ctx, events.EventResourceDeleted, subject, string(domain.ResourceAdZone), id)
	return nil
}

// checkSiteAccess authorizes a site operation through the owning publisher.
func (s *InventoryService) checkSiteAccess(ctx context.Context, subject domain.Subject, site *domain.Site) error {
	if subject.IsAdmin() {
		return nil
	}
	publisher, err := s.publishers.GetByID(ctx, site.PublisherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden("permission denied")
		}
		return err
	}
	if publisher.UserID != subject.ID {
		return apperrors.NewForbidden("permission denied")
	}
	return nil
}

func (s *InventoryService) publishMutation(ctx context.Context, eventType events.EventType, subject domain.Subject, resourceType string, resourceID int64) {
	if s.dispatcher == nil {
		return
	}
	actor := subject
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     &actor,
		Resource:  resourceType,
		Timestamp: time.Now(),
		Payload: events.ResourceMutationPayload{
			ResourceType: resourceType,
			ResourceID:   resourceID,
		},
	})
}
