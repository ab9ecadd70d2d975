package domain

import "time"

// Publisher is a site-owning account profile tied to a user.
type Publisher struct {
	ID          int64
	UserID      int64
	CompanyName string
	PayoutEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Site is a publisher-owned property that hosts ad zones.
type Site struct {
	ID          int64
	PublisherID int64
	Domain      string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdZone is a placement slot on a site.
type AdZone struct {
	ID        int64
	SiteID    int64
	Name      string
	Width     int
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
