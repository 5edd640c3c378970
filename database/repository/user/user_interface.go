package userRepo

import (
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a referenced user does not exist.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Upsert creates or refreshes the user record keyed by email.
	// The role field is left untouched on existing records.
	Upsert(user *models.User) error
	// GetByEmail retrieves a user by email. Returns nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetAllWithProjection retrieves all users with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.User, error)
	// SetRole updates the role of an existing user.
	// Returns ErrNotFound if no user matches the email.
	SetRole(email, role string) error
}
