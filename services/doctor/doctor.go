package doctor

import (
	"errors"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"github.com/google/uuid"
)

// ErrDoctorNotFound signals that no doctor record exists for the given email.
var ErrDoctorNotFound = errors.New("doctor not found")

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Add inserts a new doctor with a generated ID.
func (s *DefaultDoctorService) Add(d *models.Doctor) (*models.Doctor, error) {
	d.ID = uuid.NewString()
	if err := s.Repo.Create(d); err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return d, nil
}

// Delete removes the doctor with the given email.
func (s *DefaultDoctorService) Delete(email string) error {
	deleted, err := s.Repo.DeleteByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if !deleted {
		return ErrDoctorNotFound
	}
	return nil
}

// GetAll retrieves all doctors.
func (s *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}
