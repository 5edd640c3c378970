package user

import "doctorsportal/models"

// UserService handles login upserts, token issuance, and role management.
type UserService interface {
	// Login upserts the user record keyed by email and issues a fresh
	// access token. Idempotent: repeat logins refresh, never duplicate.
	Login(u models.User) (string, error)
	// GrantAdmin elevates an existing user to the admin role.
	GrantAdmin(email string) error
	// IsAdmin reports whether the stored user carries the admin role.
	IsAdmin(email string) (bool, error)
	// ListUsers retrieves all users.
	ListUsers() ([]models.User, error)
}
