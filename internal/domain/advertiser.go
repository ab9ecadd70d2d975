package domain

import (
	"fmt"
	"time"
)

// Advertiser is a campaign-owning account profile tied to a user.
type Advertiser struct {
	ID          int64
	UserID      int64
	CompanyName string
	Balance     int64 // cents
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CampaignState represents lifecycle states for a campaign.
type CampaignState string

const (
	CampaignStateDraft  CampaignState = "DRAFT"
	CampaignStateActive CampaignState = "ACTIVE"
	CampaignStatePaused CampaignState = "PAUSED"
)

// ParseCampaignState validates a raw state string.
func ParseCampaignState(raw string) (CampaignState, error) {
	switch CampaignState(raw) {
	case CampaignStateDraft, CampaignStateActive, CampaignStatePaused:
		return CampaignState(raw), nil
	default:
		return "", fmt.Errorf("unknown campaign state %q", raw)
	}
}

// Campaign is an advertiser-owned ad campaign.
type Campaign struct {
	ID           int64
	AdvertiserID int64
	Name         string
	DailyBudget  int64 // cents
	State        CampaignState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
