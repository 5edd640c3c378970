package availability

import (
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeServiceRepo struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return f.services, f.err
}

func (f *fakeServiceRepo) GetAllWithProjection(projection bson.M) ([]models.Service, error) {
	return f.services, f.err
}

func (f *fakeServiceRepo) Create(svc *models.Service) error { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) Create(b *models.Booking) error { return nil }

func (f *fakeBookingRepo) FindByConflictKey(treatment, date, patient string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByPatient(patient string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error)           { return nil, nil }
func (f *fakeBookingRepo) MarkPaid(id, transactionID string) error              { return nil }

func newEngine(services []models.Service, bookings []models.Booking) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{
		Services: &fakeServiceRepo{services: services},
		Bookings: &fakeBookingRepo{bookings: bookings},
	}
}

func TestComputeAvailabilitySubtractsBookedSlots(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Price: 60, Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am", Patient: "a@x.com"},
	}

	result, err := newEngine(services, bookings).ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Cleaning", result[0].Name)
	assert.Equal(t, []string{"10am"}, result[0].Slots)
}

func TestComputeAvailabilityNoBookingsReturnsFullRoster(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: []string{"1pm", "2pm"}},
	}

	result, err := newEngine(services, nil).ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"9am", "10am", "11am"}, result[0].Slots)
	assert.Equal(t, []string{"1pm", "2pm"}, result[1].Slots)
}

func TestComputeAvailabilityIgnoresOtherDates(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-02", Slot: "9am", Patient: "a@x.com"},
	}

	result, err := newEngine(services, bookings).ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am"}, result[0].Slots)
}

func TestComputeAvailabilityIgnoresOtherTreatments(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
		{Name: "Whitening", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am", Patient: "a@x.com"},
	}

	result, err := newEngine(services, bookings).ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10am"}, result[0].Slots)
	assert.Equal(t, []string{"9am", "10am"}, result[1].Slots)
}

func TestComputeAvailabilityPreservesSlotOrder(t *testing.T) {
	services := []models.Service{
		{Name: "Surgery", Slots: []string{"8am", "9am", "10am", "11am", "12pm"}},
	}
	bookings := []models.Booking{
		{Treatment: "Surgery", Date: "2024-06-15", Slot: "9am"},
		{Treatment: "Surgery", Date: "2024-06-15", Slot: "11am"},
	}

	result, err := newEngine(services, bookings).ComputeAvailability("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"8am", "10am", "12pm"}, result[0].Slots)
}

func TestComputeAvailabilityMatchesDateVerbatim(t *testing.T) {
	// "2024-01-01" and "Jan 1, 2024" are distinct keys; no normalization.
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "Jan 1, 2024", Slot: "9am"},
	}

	result, err := newEngine(services, bookings).ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am"}, result[0].Slots)

	result, err = newEngine(services, bookings).ComputeAvailability("Jan 1, 2024")
	require.NoError(t, err)
	assert.Empty(t, result[0].Slots)
}

func TestComputeAvailabilityIsIdempotent(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Slot: "10am"},
	}

	engine := newEngine(services, bookings)
	first, err := engine.ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	second, err := engine.ComputeAvailability("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeAvailabilityFailsClosedOnRepoError(t *testing.T) {
	engine := &DefaultAvailabilityEngine{
		Services: &fakeServiceRepo{err: errors.New("connection reset")},
		Bookings: &fakeBookingRepo{},
	}
	result, err := engine.ComputeAvailability("2024-01-01")
	assert.Error(t, err)
	assert.Nil(t, result)

	engine = &DefaultAvailabilityEngine{
		Services: &fakeServiceRepo{services: []models.Service{{Name: "Cleaning"}}},
		Bookings: &fakeBookingRepo{err: errors.New("connection reset")},
	}
	result, err = engine.ComputeAvailability("2024-01-01")
	assert.Error(t, err)
	assert.Nil(t, result)
}
