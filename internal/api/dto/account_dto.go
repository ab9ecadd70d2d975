package dto

import "time"

// UpdatePublisherRequest payload.
type UpdatePublisherRequest struct {
	CompanyName string `json:"company_name"`
	PayoutEmail string `json:"payout_email"`
}

// PublisherResponse response.
type PublisherResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name"`
	PayoutEmail string    `json:"payout_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateAdvertiserRequest payload.
type UpdateAdvertiserRequest struct {
	CompanyName string `json:"company_name"`
}

// AdvertiserResponse response.
type AdvertiserResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}
