package booking

import "doctorsportal/models"

// BookingService coordinates booking creation, payment recording, and
// payment-intent issuance.
type BookingService interface {
	// CreateBooking validates the request for conflicts on the
	// (treatment, date, patient) key and persists it. A duplicate yields
	// ErrAlreadyBooked with no record written and no side effects.
	CreateBooking(req *models.Booking) (*models.Booking, error)
	// RecordPayment appends a payment record and marks the referenced
	// booking paid with the given transaction ID.
	RecordPayment(bookingID, transactionID string) error
	// CreatePaymentIntent asks the payment gateway for an intent covering
	// the given price (major currency units) and returns its client secret.
	CreatePaymentIntent(price float64) (string, error)
	// GetBookingsForPatient lists a patient's own bookings.
	GetBookingsForPatient(patient string) ([]models.Booking, error)
	// GetBooking fetches one booking by ID.
	GetBooking(id string) (*models.Booking, error)
}
