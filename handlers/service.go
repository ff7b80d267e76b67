package handlers

import (
	"net/http"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the treatment catalog and its availability view.
type ServiceHandler struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(services serviceRepo.ServiceRepository, bookings bookingRepo.BookingRepository) *ServiceHandler {
	return &ServiceHandler{Services: services, Bookings: bookings}
}

// GetServicesHandler returns the treatment catalog. With ?projection=name
// only the service names are returned.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	fetch := h.Services.GetAll
	if c.Query("projection") == "name" {
		fetch = h.Services.GetAllNames
	}

	services, err := fetch()
	if err != nil {
		zap.L().Error("Failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailableHandler returns the catalog with each service's slots filtered
// to the ones not yet booked on the requested date.
func (h *ServiceHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter 'date'", "")
		return
	}

	services, err := h.Services.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch services", "")
		return
	}

	bookings, err := h.Bookings.ListByDate(date)
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch bookings", "")
		return
	}

	c.JSON(http.StatusOK, availability.Compute(services, bookings))
}
