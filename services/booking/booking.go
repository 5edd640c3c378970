package booking

import (
	"errors"
	"fmt"
	"math"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAlreadyBooked signals a duplicate booking for the same
// (treatment, date, patient) key. It is an expected negative result,
// not a server failure.
var ErrAlreadyBooked = errors.New("already booked")

// ErrNotFound signals that a referenced booking does not exist.
var ErrNotFound = errors.New("booking not found")

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Intents  PaymentIntenter
	Notifier notification.BookingNotifier
	Logger   *zap.Logger
}

// CreateBooking persists a new booking after checking the conflict key.
// The pre-insert lookup gives the common duplicate a cheap negative answer;
// the unique index on (treatment, date, patient) closes the window between
// two identical concurrent requests, which both surface as ErrAlreadyBooked.
// The confirmation email is handed to the notifier and never blocks or
// fails the booking.
func (s *DefaultBookingService) CreateBooking(req *models.Booking) (*models.Booking, error) {
	existing, err := s.Repo.FindByConflictKey(req.Treatment, req.Date, req.Patient)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	req.ID = uuid.New().String()
	req.Paid = false
	if err := s.Repo.Create(req); err != nil {
		if errors.Is(err, bookingRepo.ErrAlreadyBooked) {
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyBookingConfirmed(*req)
	}

	s.Logger.Info("booking created",
		zap.String("id", req.ID),
		zap.String("treatment", req.Treatment),
		zap.String("date", req.Date),
		zap.String("slot", req.Slot))
	return req, nil
}

// RecordPayment appends a payment record and marks the booking paid.
// The two writes are not atomic: a booking left unpaid with a matching
// payment row is recoverable from the ledger, so a failed update after a
// successful insert is logged loudly and surfaced as an error rather than
// silently dropped.
func (s *DefaultBookingService) RecordPayment(bookingID, transactionID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     b.ID,
		Patient:       b.Patient,
		Treatment:     b.Treatment,
		Amount:        b.Price,
		TransactionID: transactionID,
	}
	if err := s.Payments.Create(payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.Repo.MarkPaid(b.ID, transactionID); err != nil {
		s.Logger.Error("payment recorded but booking not marked paid",
			zap.String("bookingId", b.ID),
			zap.String("transactionId", transactionID),
			zap.Error(err))
		return fmt.Errorf("payment recorded but booking update failed: %w", err)
	}
	return nil
}

// CreatePaymentIntent delegates to the payment gateway. The price arrives in
// major currency units and is converted to minor units for the gateway.
// Rounded, not truncated: 19.99*100 is 1998.99... in float64 and plain
// conversion would undercharge by a cent.
func (s *DefaultBookingService) CreatePaymentIntent(price float64) (string, error) {
	clientSecret, err := s.Intents.CreateIntent(int64(math.Round(price * 100)))
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return clientSecret, nil
}

// GetBookingsForPatient lists all bookings for one patient email.
func (s *DefaultBookingService) GetBookingsForPatient(patient string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByPatient(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", patient, err)
	}
	return bookings, nil
}

// GetBooking fetches one booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
