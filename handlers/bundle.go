package handlers

import (
	userRepo "doctorsportal/database/repository/user"
)

// HandlerBundle groups the assembled handlers and the repositories the
// route middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Services     *ServiceHandler
	Users        *UserHandler
	Doctors      *DoctorHandler
}
