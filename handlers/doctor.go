package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-only doctor catalog endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// addDoctorRequest is the POST /doctor payload.
type addDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"image"`
}

// AddDoctorHandler inserts a new doctor into the catalog.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var req addDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	created, err := h.Service.Add(&models.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	})
	if err != nil {
		zap.L().Error("Failed to add doctor", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "doctor": created})
}

// DeleteDoctorHandler removes a doctor from the catalog by email.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")

	if err := h.Service.Delete(email); err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		zap.L().Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetDoctorsHandler returns the full doctor catalog.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch doctors", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}
