package serviceRepo

import "doctorsportal/models"

// ServiceRepository provides read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll returns the full catalog.
	GetAll() ([]models.Service, error)
	// GetAllNames returns the catalog with a name-only projection.
	GetAllNames() ([]models.Service, error)
}
