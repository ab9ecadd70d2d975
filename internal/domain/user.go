package domain

import (
	"fmt"
	"time"
)

// UserStatus represents lifecycle states for a platform account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// ParseUserStatus validates a raw status string.
func ParseUserStatus(raw string) (UserStatus, error) {
	switch UserStatus(raw) {
	case UserStatusActive, UserStatusSuspended:
		return UserStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown user status %q", raw)
	}
}

// User is the domain model for platform accounts (admins, publishers, advertisers).
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subject returns the token-embeddable identity of the user.
func (u *User) Subject() Subject {
	return Subject{ID: u.ID, Username: u.Username, Role: u.Role}
}
