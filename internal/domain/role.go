package domain

import "fmt"

// Role represents the account role carried inside access tokens.
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePublisher  Role = "publisher"
	RoleAdvertiser Role = "advertiser"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RolePublisher, RoleAdvertiser:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
