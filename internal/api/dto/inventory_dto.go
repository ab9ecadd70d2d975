package dto

import "time"

// CreateCampaignRequest payload.
type CreateCampaignRequest struct {
	AdvertiserID int64  `json:"advertiser_id"`
	Name         string `json:"name"`
	DailyBudget  int64  `json:"daily_budget"`
}

// UpdateCampaignRequest payload.
type UpdateCampaignRequest struct {
	Name        string `json:"name"`
	DailyBudget int64  `json:"daily_budget"`
	State       string `json:"state"`
}

// CampaignResponse response.
type CampaignResponse struct {
	ID           int64     `json:"id"`
	AdvertiserID int64     `json:"advertiser_id"`
	Name         string    `json:"name"`
	DailyBudget  int64     `json:"daily_budget"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSiteRequest payload.
type CreateSiteRequest struct {
	PublisherID int64  `json:"publisher_id"`
	Domain      string `json:"domain"`
	Category    string `json:"category"`
}

// UpdateSiteRequest payload.
type UpdateSiteRequest struct {
	Domain   string `json:"domain"`
	Category string `json:"category"`
}

// SiteResponse response.
type SiteResponse struct {
	ID          int64     `json:"id"`
	PublisherID int64     `json:"publisher_id"`
	Domain      string    `json:"domain"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateZoneRequest payload.
type CreateZoneRequest struct {
	SiteID int64  `json:"site_id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// UpdateZoneRequest payload.
type UpdateZoneRequest struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ZoneResponse response.
type ZoneResponse struct {
	ID        int64     `json:"id"`
	SiteID    int64     `json:"site_id"`
	Name      string    `json:"name"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}
