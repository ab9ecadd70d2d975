package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ad-platform/internal/api/http/handlers"
	"github.com/spec-kit/ad-platform/internal/auth"
	"github.com/spec-kit/ad-platform/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Accounts   *handlers.AccountsHandler
	Campaigns  *handlers.CampaignsHandler
	Inventory  *handlers.InventoryHandler
	Middleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Each resource group runs through the
// authorization gate under its policy-table resource name; scoped routes
// additionally confirm ownership of the addressed entity.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Login stays outside every policy entry: without a token there is
	// nothing to authorize yet.
	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api")
	mw := cfg.Middleware

	users := api.Group("/users", mw.Protect("users"))
	users.Post("", cfg.Auth.CreateAccount)
	users.Get("/:id", mw.RequireOwnership(domain.ResourceUser, "id"), cfg.Accounts.GetUser)
	users.Put("/:id", mw.RequireOwnership(domain.ResourceUser, "id"), cfg.Accounts.UpdateUser)
	users.Delete("/:id", mw.RequireOwnership(domain.ResourceUser, "id"), cfg.Accounts.DeleteUser)

	publishers := api.Group("/publishers", mw.Protect("publishers"))
	publishers.Get("/:id", mw.RequireOwnership(domain.ResourcePublisher, "id"), cfg.Accounts.GetPublisher)
	publishers.Put("/:id", mw.RequireOwnership(domain.ResourcePublisher, "id"), cfg.Accounts.UpdatePublisher)
	publishers.Delete("/:id", mw.RequireOwnership(domain.ResourcePublisher, "id"), cfg.Accounts.DeletePublisher)

	advertisers := api.Group("/advertisers", mw.Protect("advertisers"))
	advertisers.Get("/:id", mw.RequireOwnership(domain.ResourceAdvertiser, "id"), cfg.Accounts.GetAdvertiser)
	advertisers.Put("/:id", mw.RequireOwnership(domain.ResourceAdvertiser, "id"), cfg.Accounts.UpdateAdvertiser)
	advertisers.Delete("/:id", mw.RequireOwnership(domain.ResourceAdvertiser, "id"), cfg.Accounts.DeleteAdvertiser)

	campaigns := api.Group("/campaigns", mw.Protect("campaigns"))
	campaigns.Post("", cfg.Campaigns.Create)
	campaigns.Get("", cfg.Campaigns.List)
	campaigns.Get("/:id", mw.RequireOwnership(domain.ResourceCampaign, "id"), cfg.Campaigns.Get)
	campaigns.Put("/:id", mw.RequireOwnership(domain.ResourceCampaign, "id"), cfg.Campaigns.Update)
	campaigns.Delete("/:id", mw.RequireOwnership(domain.ResourceCampaign, "id"), cfg.Campaigns.Delete)

	// Sites are authorized through their owning publisher inside the
	// service layer; there is no "site" resource type.
	sites := api.Group("/sites", mw.Protect("sites"))
	sites.Post("", cfg.Inventory.CreateSite)
	sites.Get("", cfg.Inventory.ListSites)
	sites.Get("/:id", cfg.Inventory.GetSite)
	sites.Put("/:id", cfg.Inventory.UpdateSite)
	sites.Delete("/:id", cfg.Inventory.DeleteSite)

	zones := api.Group("/ad_zones", mw.Protect("ad_zones"))
	zones.Post("", cfg.Inventory.CreateZone)
	zones.Get("", cfg.Inventory.ListZones)
	zones.Get("/:id", mw.RequireOwnership(domain.ResourceAdZone, "id"), cfg.Inventory.GetZone)
	zones.Put("/:id", mw.RequireOwnership(domain.ResourceAdZone, "id"), cfg.Inventory.UpdateZone)
	zones.Delete("/:id", mw.RequireOwnership(domain.ResourceAdZone, "id"), cfg.Inventory.DeleteZone)
}
