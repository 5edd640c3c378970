package notification

import "doctorsportal/models"

// BookingNotifier sends booking confirmations. Implementations must not
// block the caller: delivery happens in the background and failures are
// logged, never returned to the request path.
type BookingNotifier interface {
	NotifyBookingConfirmed(b models.Booking)
}
