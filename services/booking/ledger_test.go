package booking

import (
	"sync"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository that enforces the same
// unique indexes as the mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookingRepo) Insert(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.bookings {
		if existing.Treatment == b.Treatment && existing.Date == b.Date {
			if existing.Patient == b.Patient {
				return bookingRepo.ErrDuplicatePatient
			}
			if existing.Slot == b.Slot {
				return bookingRepo.ErrSlotTaken
			}
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) FindByTuple(treatment, date, patient string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByDate(date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByPatient(patient string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func newBooking(patient, slot string) *models.Booking {
	return &models.Booking{
		Treatment: "Cleaning",
		Date:      "2024-01-01",
		Patient:   patient,
		Slot:      slot,
	}
}

func TestCreateFirstBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	outcome, err := svc.Create(newBooking("p1@x.com", "10am"))

	require.NoError(t, err)
	assert.True(t, outcome.Created)
	assert.NotEmpty(t, outcome.Booking.ID)
	assert.Equal(t, 1, repo.count())
}

func TestCreateIsIdempotentPerPatientTuple(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	first, err := svc.Create(newBooking("p1@x.com", "10am"))
	require.NoError(t, err)
	require.True(t, first.Created)

	// Same (treatment, date, patient), even with a different slot.
	second, err := svc.Create(newBooking("p1@x.com", "11am"))

	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Booking.ID, second.Booking.ID,
		"duplicate outcome must reference the original record")
	assert.Equal(t, 1, repo.count(), "store must contain exactly one record for the tuple")
}

func TestCreateRejectsSlotHeldByAnotherPatient(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.Create(newBooking("p1@x.com", "10am"))
	require.NoError(t, err)

	_, err = svc.Create(newBooking("p2@x.com", "10am"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, repo.count())
}

func TestCreateConcurrentSameSlotAdmitsOne(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	const callers = 16
	var wg sync.WaitGroup
	created := make(chan string, callers)

	for i := 0; i < callers; i++ {
		patient := string(rune('a'+i)) + "@x.com"
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := svc.Create(newBooking(patient, "10am"))
			if err == nil && outcome.Created {
				created <- outcome.Booking.Patient
			}
		}()
	}
	wg.Wait()
	close(created)

	var winners []string
	for p := range created {
		winners = append(winners, p)
	}
	assert.Len(t, winners, 1, "exactly one caller may win the slot")
	assert.Equal(t, 1, repo.count())
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	bk, err := svc.GetByID("missing")

	require.NoError(t, err)
	assert.Nil(t, bk)
}

func TestListByPatient(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.Create(newBooking("p1@x.com", "9am"))
	require.NoError(t, err)
	_, err = svc.Create(newBooking("p2@x.com", "10am"))
	require.NoError(t, err)

	bookings, err := svc.ListByPatient("p1@x.com")

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "9am", bookings[0].Slot)
}
