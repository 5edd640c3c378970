package doctorRepo

import (
	"errors"

	"doctorsportal/models"
)

// ErrNotFound is returned when a referenced doctor does not exist.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines methods for doctor roster access.
type DoctorRepository interface {
	// GetAll retrieves the full doctor roster.
	GetAll() ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doc *models.Doctor) error
	// DeleteByEmail removes a doctor record by its email.
	// Returns ErrNotFound if no doctor matches.
	DeleteByEmail(email string) error
}
