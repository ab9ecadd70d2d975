package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/api/dto"
	"github.com/spec-kit/ad-platform/internal/service"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

// InventoryHandler manages site and ad zone endpoints.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventoryService}
}

// CreateSite POST /api/sites.
func (h *InventoryHandler) CreateSite(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	var req dto.CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Domain == "" {
		return apperrors.NewValidationError("domain required", nil)
	}

	site, err := h.inventory.CreateSite(c.Context(), subject, service.SiteInput{
		PublisherID: req.PublisherID,
		Domain:      req.Domain,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": siteResponse(site)})
}

// ListSites GET /api/sites.
func (h *InventoryHandler) ListSites(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	publisherID := int64(c.QueryInt("publisher_id"))
	sites, err := h.inventory.ListSites(c.Context(), subject, publisherID)
	if err != nil {
		return err
	}
	items := make([]dto.SiteResponse, 0, len(sites))
	for i := range sites {
		items = append(items, siteResponse(&sites[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetSite GET /api/sites/:id.
func (h *InventoryHandler) GetSite(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	site, err := h.inventory.GetSite(c.Context(), subject, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": siteResponse(site)})
}

// UpdateSite PUT /api/sites/:id.
func (h *InventoryHandler) UpdateSite(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	site, err := h.inventory.UpdateSite(c.Context(), subject, id, req.Domain, req.Category)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": siteResponse(site)})
}

// DeleteSite DELETE /api/sites/:id.
func (h *InventoryHandler) DeleteSite(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.inventory.DeleteSite(c.Context(), subject, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateZone POST /api/ad_zones.
func (h *InventoryHandler) CreateZone(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	var req dto.CreateZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.SiteID <= 0 || req.Name == "" {
		return apperrors.NewValidationError("site_id and name required", nil)
	}

	zone, err := h.inventory.CreateZone(c.Context(), subject, service.ZoneInput{
		SiteID: req.SiteID,
		Name:   req.Name,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": zoneResponse(zone)})
}

// ListZones GET /api/ad_zones?site_id=N.
func (h *InventoryHandler) ListZones(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	siteID := int64(c.QueryInt("site_id"))
	if siteID <= 0 {
		return apperrors.NewValidationError("site_id required", nil)
	}
	zones, err := h.inventory.ListZones(c.Context(), subject, siteID)
	if err != nil {
		return err
	}
	items := make([]dto.ZoneResponse, 0, len(zones))
	for i := range zones {
		items = append(items, zoneResponse(&zones[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetZone GET /api/ad_zones/:id.
func (h *InventoryHandler) GetZone(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	zone, err := h.inventory.GetZone(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": zoneResponse(zone)})
}

// UpdateZone PUT /api/ad_zones/:id.
func (h *InventoryHandler) UpdateZone(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	zone, err := h.inventory.UpdateZone(c.Context(), subject, id, req.Name, req.Width, req.Height)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": zoneResponse(zone)})
}

// DeleteZone DELETE /api/ad_zones/:id.
func (h *InventoryHandler) DeleteZone(c *fiber.Ctx) error {
	subject, err := requireSubject(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.inventory.DeleteZone(c.Context(), subject, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
