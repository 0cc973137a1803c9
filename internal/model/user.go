package model

import "time"

// Role names.  Roles are reference data seeded with the schema.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Role represents a row in the `roles` table.
type Role struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// User represents an account.  PasswordHash is never serialized; Roles are
// resolved to their names on every read.
type User struct {
	ID           string    `json:"_id"`
	Mail         string    `json:"mail"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Lang         string    `json:"lang"`
	Theme        string    `json:"theme"`
	Scale        float64   `json:"scale"`
	Verified     bool      `json:"verified"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether any of the user's roles is "admin".
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r.Name == RoleAdmin {
			return true
		}
	}
	return false
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Name)
	}
	return out
}

// MailToken is a one-time opaque token mailed to a user for password reset.
// It is deleted when used or once it expires.
type MailToken struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its window at now.
func (t *MailToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
