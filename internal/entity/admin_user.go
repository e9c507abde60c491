package entity

import "time"

type AdminRole string

const (
	RoleSuperadmin AdminRole = "superadmin"
	RoleAdmin      AdminRole = "admin"
	RoleModerator  AdminRole = "moderator"
)

type AdminUser struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitize returns a copy safe to hand to the client. The hash is already
// hidden from JSON, zeroing it keeps it out of logs and test dumps too.
func (a AdminUser) Sanitize() AdminUser {
	a.PasswordHash = ""
	return a
}
