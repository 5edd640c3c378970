package bookingRepo

import (
	"errors"

	"doctorsportal/models"
)

// ErrAlreadyBooked is returned when an insert collides with an existing
// booking for the same (treatment, date, patient) key.
var ErrAlreadyBooked = errors.New("already booked")

// ErrNotFound is returned when a referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrAlreadyBooked if a booking
	// with the same (treatment, date, patient) key already exists.
	Create(b *models.Booking) error
	// FindByConflictKey retrieves a booking matching the conflict key
	// exactly. Returns nil if absent.
	FindByConflictKey(treatment, date, patient string) (*models.Booking, error)
	// GetByDate retrieves all bookings whose date equals the given value.
	GetByDate(date string) ([]models.Booking, error)
	// GetByPatient retrieves all bookings belonging to the given patient.
	GetByPatient(patient string) ([]models.Booking, error)
	// GetByID retrieves a booking by its ID. Returns ErrNotFound if absent.
	GetByID(id string) (*models.Booking, error)
	// MarkPaid sets paid=true and records the transaction ID on the booking.
	// Returns ErrNotFound if no booking matches the ID.
	MarkPaid(id, transactionID string) error
}
