package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/api/dto"
	"github.com/spec-kit/ad-platform/internal/auth"
	"github.com/spec-kit/ad-platform/internal/domain"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

func pathID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"param": param})
	}
	return id, nil
}

func requireSubject(c *fiber.Ctx) (domain.Subject, error) {
	subject, ok := auth.SubjectFromContext(c)
	if !ok {
		return domain.Subject{}, apperrors.NewUnauthorized("authentication required")
	}
	return *subject, nil
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

func publisherResponse(publisher *domain.Publisher) dto.PublisherResponse {
	return dto.PublisherResponse{
		ID:          publisher.ID,
		UserID:      publisher.UserID,
		CompanyName: publisher.CompanyName,
		PayoutEmail: publisher.PayoutEmail,
		CreatedAt:   publisher.CreatedAt,
	}
}

func advertiserResponse(advertiser *domain.Advertiser) dto.AdvertiserResponse {
	return dto.AdvertiserResponse{
		ID:          advertiser.ID,
		UserID:      advertiser.UserID,
		CompanyName: advertiser.CompanyName,
		Balance:     advertiser.Balance,
		CreatedAt:   advertiser.CreatedAt,
	}
}

func campaignResponse(campaign *domain.Campaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		ID:           campaign.ID,
		AdvertiserID: campaign.AdvertiserID,
		Name:         campaign.Name,
		DailyBudget:  campaign.DailyBudget,
		State:        string(campaign.State),
		CreatedAt:    campaign.CreatedAt,
		UpdatedAt:    campaign.UpdatedAt,
	}
}

func siteResponse(site *domain.Site) dto.SiteResponse {
	return dto.SiteResponse{
		ID:          site.ID,
		PublisherID: site.PublisherID,
		Domain:      site.Domain,
		Category:    site.Category,
		CreatedAt:   site.CreatedAt,
	}
}

func zoneResponse(zone *domain.AdZone) dto.ZoneResponse {
	return dto.ZoneResponse{
		ID:        zone.ID,
		SiteID:    zone.SiteID,
		Name:      zone.Name,
		Width:     zone.Width,
		Height:    zone.Height,
		CreatedAt: zone.CreatedAt,
	}
}
