package handlers

import (
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the route handlers and the role resolver the
// guards need, so route registration receives one assembled value.
type HandlerBundle struct {
	// UserService backs the admin guard's role resolution.
	UserService user.UserService

	// Catalog and availability endpoints.
	GetServicesHandler  gin.HandlerFunc
	GetAvailableHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler        gin.HandlerFunc
	GetBookingByIDHandler       gin.HandlerFunc
	GetBookingsByPatientHandler gin.HandlerFunc

	// User endpoints.
	UpsertUserHandler  gin.HandlerFunc
	GetAllUsersHandler gin.HandlerFunc
	CheckAdminHandler  gin.HandlerFunc
	PromoteUserHandler gin.HandlerFunc

	// Doctor endpoints.
	AddDoctorHandler    gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
	GetDoctorsHandler   gin.HandlerFunc
}
