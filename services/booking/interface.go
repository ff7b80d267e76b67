package booking

import "doctorsportal/models"

// Outcome is the result of a booking attempt. A duplicate is a deliberate
// idempotent acceptance, not an error: Booking then references the record
// created by the earlier identical request.
type Outcome struct {
	Created bool
	Booking *models.Booking
}

// BookingService is the booking ledger: it creates bookings atomically
// against the store's uniqueness rules and reads them back.
type BookingService interface {
	Create(booking *models.Booking) (*Outcome, error)
	GetByID(id string) (*models.Booking, error)
	ListByPatient(patient string) ([]models.Booking, error)
}
