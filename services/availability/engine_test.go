package availability

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.Service {
	return []models.Service{
		{ID: "1", Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{ID: "2", Name: "Whitening", Slots: []string{"10am", "11am"}},
	}
}

func TestComputeRemovesBookedSlots(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Patient: "p1", Slot: "10am"},
	}

	result := Compute(catalog(), bookings)

	require.Len(t, result, 2)
	assert.Equal(t, []string{"9am", "11am"}, result[0].Slots)
	assert.Equal(t, []string{"10am", "11am"}, result[1].Slots)
}

func TestComputeEmptyBookingsReturnsFullCatalog(t *testing.T) {
	result := Compute(catalog(), nil)

	require.Len(t, result, 2)
	assert.Equal(t, []string{"9am", "10am", "11am"}, result[0].Slots)
	assert.Equal(t, []string{"10am", "11am"}, result[1].Slots)
}

func TestComputeIgnoresUnknownTreatments(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Filling", Slot: "9am"},
		{Treatment: "Filling", Slot: "10am"},
	}

	result := Compute(catalog(), bookings)

	assert.Equal(t, []string{"9am", "10am", "11am"}, result[0].Slots)
	assert.Equal(t, []string{"10am", "11am"}, result[1].Slots)
}

func TestComputeCollapsesDuplicateBookings(t *testing.T) {
	// Two bookings for the same slot behave the same as one.
	bookings := []models.Booking{
		{Treatment: "Cleaning", Patient: "p1", Slot: "9am"},
		{Treatment: "Cleaning", Patient: "p2", Slot: "9am"},
	}

	result := Compute(catalog(), bookings)

	assert.Equal(t, []string{"10am", "11am"}, result[0].Slots)
}

func TestComputePreservesSlotOrder(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"11am", "9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	result := Compute(services, bookings)

	assert.Equal(t, []string{"11am", "10am"}, result[0].Slots)
}

func TestComputeNeverInventsOrRemovesExtraSlots(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "10am"},
		{Treatment: "Cleaning", Slot: "2pm"}, // not in the catalog
	}

	result := Compute(catalog(), bookings)

	assert.Equal(t, []string{"9am", "11am"}, result[0].Slots)
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	services := catalog()
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	Compute(services, bookings)

	assert.Equal(t, []string{"9am", "10am", "11am"}, services[0].Slots,
		"the shared catalog must not be mutated")
}

func TestComputeFullyBookedService(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Whitening", Slot: "10am"},
		{Treatment: "Whitening", Slot: "11am"},
	}

	result := Compute(catalog(), bookings)

	assert.Empty(t, result[1].Slots)
}
