package domain

// Subject is the authenticated identity embedded in an access token.
type Subject struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the subject carries the admin role.
func (s Subject) IsAdmin() bool {
	return s.Role == RoleAdmin
}
