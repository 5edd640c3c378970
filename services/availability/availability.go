package availability

import (
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
)

// AvailabilityEngine computes per-date open slots for the whole catalog.
type AvailabilityEngine interface {
	// ComputeAvailability returns every service with its slot roster reduced
	// to the slots not yet booked on the given date.
	ComputeAvailability(date string) ([]models.AvailableService, error)
}

// DefaultAvailabilityEngine implements AvailabilityEngine.
type DefaultAvailabilityEngine struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// ComputeAvailability fetches the full catalog and the day's bookings, then
// subtracts each service's booked slots from its roster. The date is matched
// verbatim against stored bookings: no parsing, no timezone normalization.
// Slot order follows the catalog roster; a read-only derivation with no
// side effects, safe to call concurrently.
func (e *DefaultAvailabilityEngine) ComputeAvailability(date string) ([]models.AvailableService, error) {
	services, err := e.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	bookings, err := e.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	// Booked slots per treatment name.
	bookedSlots := make(map[string]map[string]bool)
	for _, b := range bookings {
		if bookedSlots[b.Treatment] == nil {
			bookedSlots[b.Treatment] = make(map[string]bool)
		}
		bookedSlots[b.Treatment][b.Slot] = true
	}

	result := make([]models.AvailableService, 0, len(services))
	for _, svc := range services {
		booked := bookedSlots[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !booked[slot] {
				open = append(open, slot)
			}
		}
		result = append(result, models.AvailableService{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
			Slots: open,
		})
	}
	return result, nil
}
