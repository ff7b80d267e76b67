package doctorRepo

import "doctorsportal/models"

// DoctorRepository persists the doctor catalog managed by admins.
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	// DeleteByEmail removes a doctor record. Returns false when no record
	// matched.
	DeleteByEmail(email string) (bool, error)
	GetAll() ([]models.Doctor, error)
}
