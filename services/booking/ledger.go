package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/google/uuid"
)

// ErrSlotTaken means another patient already holds the requested
// (treatment, date, slot) tuple.
var ErrSlotTaken = errors.New("slot already booked by another patient")

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Create attempts to record a booking. There is no separate existence check:
// the insert itself is the atomic step, and the store's unique indexes
// decide between the three outcomes.
//
//   - The insert succeeds: the new record is returned as created.
//   - The (treatment, date, patient) index rejects it: the existing record
//     is fetched and returned as a duplicate.
//   - The (treatment, date, slot) index rejects it: ErrSlotTaken.
func (s *DefaultBookingService) Create(b *models.Booking) (*Outcome, error) {
	b.ID = uuid.NewString()

	err := s.Repo.Insert(b)
	if err == nil {
		return &Outcome{Created: true, Booking: b}, nil
	}

	switch {
	case errors.Is(err, bookingRepo.ErrDuplicatePatient):
		existing, ferr := s.Repo.FindByTuple(b.Treatment, b.Date, b.Patient)
		if ferr != nil {
			return nil, fmt.Errorf("failed to fetch existing booking: %w", ferr)
		}
		if existing == nil {
			// The conflicting record was deleted between the rejected
			// insert and the read; treat the attempt as failed.
			return nil, fmt.Errorf("booking rejected as duplicate but no record found: %w", err)
		}
		return &Outcome{Created: false, Booking: existing}, nil
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		return nil, ErrSlotTaken
	default:
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
}

// GetByID returns the booking with the given ID, or nil when absent.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListByPatient returns all bookings made by the given patient.
func (s *DefaultBookingService) ListByPatient(patient string) ([]models.Booking, error) {
	return s.Repo.ListByPatient(patient)
}
