package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/api/dto"
	"github.com/spec-kit/ad-platform/internal/domain"
	"github.com/spec-kit/ad-platform/internal/service"
	apperrors "github.com/spec-kit/ad-platform/pkg/util"
)

// AccountsHandler manages user, publisher and advertiser endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// GetUser GET /api/users/:id.
func (h *AccountsHandler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.accounts.GetUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// UpdateUser PUT /api/users/:id.
func (h *AccountsHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	var status domain.UserStatus
	if req.Status != "" {
		status, err = domain.ParseUserStatus(req.Status)
		if err != nil {
			return apperrors.NewValidationError("invalid status", map[string]any{"status": req.Status})
		}
	}
	user, err := h.accounts.UpdateUser(c.Context(), id, req.Email, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// DeleteUser DELETE /api/users/:id.
func (h *AccountsHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.accounts.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPublisher GET /api/publishers/:id.
func (h *AccountsHandler) GetPublisher(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	publisher, err := h.accounts.GetPublisher(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": publisherResponse(publisher)})
}

// UpdatePublisher PUT /api/publishers/:id.
func (h *AccountsHandler) UpdatePublisher(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePublisherRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	publisher, err := h.accounts.UpdatePublisher(c.Context(), id, req.CompanyName, req.PayoutEmail)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": publisherResponse(publisher)})
}

// DeletePublisher DELETE /api/publishers/:id.
func (h *AccountsHandler) DeletePublisher(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.accounts.DeletePublisher(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAdvertiser GET /api/advertisers/:id.
func (h *AccountsHandler) GetAdvertiser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	advertiser, err := h.accounts.GetAdvertiser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": advertiserResponse(advertiser)})
}

// UpdateAdvertiser PUT /api/advertisers/:id.
func (h *AccountsHandler) UpdateAdvertiser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAdvertiserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	advertiser, err := h.accounts.UpdateAdvertiser(c.Context(), id, req.CompanyName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": advertiserResponse(advertiser)})
}

// DeleteAdvertiser DELETE /api/advertisers/:id.
func (h *AccountsHandler) DeleteAdvertiser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.accounts.DeleteAdvertiser(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
