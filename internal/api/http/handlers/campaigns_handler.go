package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/api/dto"
	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/service"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

// CampaignsHandler manages campaign endpoints.
type CampaignsHandler struct {
	campaigns *service.CampaignService
}

// NewCampaignsHandler constructs handler.
func NewCampaignsHandler(campaignService *service.CampaignService) *CampaignsHandler {
	return &CampaignsHandler{campaigns: campaignService}
}

// Create POST /api/campaigns.
func (h *CampaignsHandler) Create(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	campaign, err := h.campaigns.Create(c.Context(), subject, service.CampaignInput{
		AdvertiserID: req.AdvertiserID,
		Name:         req.Name,
		DailyBudget:  req.DailyBudget,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": campaignResponse(campaign)})
}

// List GET /api/campaigns.
func (h *CampaignsHandler) List(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	advertiserID := int64(c.QueryInt("advertiser_id"))
	campaigns, err := h.campaigns.List(c.Context(), subject, advertiserID)
	if err != nil {
		return err
	}
	items := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, campaignResponse(&campaigns[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/campaigns/:id.
func (h *CampaignsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	campaign, err := h.campaigns.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": campaignResponse(campaign)})
}

// Update PUT /api/campaigns/:id.
func (h *CampaignsHandler) Update(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	var state domain.CampaignState
	if req.State != "" {
		state, err = domain.ParseCampaignState(req.State)
		if err != nil {
			return apperrors.NewValidationError("invalid state", map[string]any{"state": req.State})
		}
	}
	campaign, err := h.campaigns.Update(c.Context(), subject, id, req.Name, req.DailyBudget, state)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": campaignResponse(campaign)})
}

// Delete DELETE /api/campaigns/:id.
func (h *CampaignsHandler) Delete(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.campaigns.Delete(c.Context(), subject, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
