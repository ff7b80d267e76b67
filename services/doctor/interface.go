package doctor

import "doctorsportal/models"

// DoctorService manages the admin-maintained doctor catalog.
type DoctorService interface {
	Add(d *models.Doctor) (*models.Doctor, error)
	// Delete removes the doctor with the given email. Returns
	// ErrDoctorNotFound when no record matched.
	Delete(email string) error
	GetAll() ([]models.Doctor, error)
}
