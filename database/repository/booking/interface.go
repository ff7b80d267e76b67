package bookingRepo

import (
	"errors"

	"doctorsportal/models"
)

// Sentinel errors surfaced by Insert when a unique index rejects the write.
var (
	// ErrDuplicatePatient means a booking already exists for the same
	// (treatment, date, patient) tuple.
	ErrDuplicatePatient = errors.New("booking already exists for this treatment, date and patient")
	// ErrSlotTaken means another patient already holds the
	// (treatment, date, slot) tuple.
	ErrSlotTaken = errors.New("slot already booked for this treatment and date")
)

// BookingRepository persists booking records. Uniqueness of the
// (treatment, date, patient) and (treatment, date, slot) tuples is enforced
// by the store itself so Insert is the single atomic step of booking
// creation.
type BookingRepository interface {
	Insert(booking *models.Booking) error
	FindByTuple(treatment, date, patient string) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	ListByDate(date string) ([]models.Booking, error)
	ListByPatient(patient string) ([]models.Booking, error)
}
