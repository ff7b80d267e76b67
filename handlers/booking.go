package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and patient-facing reads.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingRequest is the POST /booking payload.
type bookingRequest struct {
	Treatment string `json:"treatment" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Patient   string `json:"patient" binding:"required,email"`
	Slot      string `json:"slot" binding:"required"`
}

// CreateBookingHandler records a booking. A repeat request for the same
// (treatment, date, patient) gets the original record back with
// success=false; a slot held by another patient is a 409.
//
// This endpoint trusts the body-supplied patient field and requires no
// credential, mirroring the documented behavior of the portal.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	outcome, err := h.Service.Create(&models.Booking{
		Treatment: req.Treatment,
		Date:      req.Date,
		Patient:   req.Patient,
		Slot:      req.Slot,
	})
	if err != nil {
		if errors.Is(err, booking.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "slot already booked"})
			return
		}
		zap.L().Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create booking", "")
		return
	}

	if !outcome.Created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": outcome.Booking})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": outcome.Booking})
}

// GetBookingsByPatientHandler lists the caller's bookings. The patient query
// parameter must match the verified claim email; asking for another
// patient's bookings is rejected.
func (h *BookingHandler) GetBookingsByPatientHandler(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter 'patient'", "")
		return
	}

	claim, ok := middleware.ClaimEmail(c)
	if !ok || claim != patient {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	bookings, err := h.Service.ListByPatient(patient)
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler returns a single booking record.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	bk, err := h.Service.GetByID(id)
	if err != nil {
		zap.L().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch booking", "")
		return
	}
	if bk == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, bk)
}
