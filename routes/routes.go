package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog and availability endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.GetServicesHandler)
	r.GET("/available", hb.GetAvailableHandler)
}

// RegisterBookingRoutes registers booking endpoints. Creation is public by
// documented behavior; reads require authentication.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)

	protected := r.Group("/booking")
	protected.Use(middleware.AuthGuard())
	protected.GET("", hb.GetBookingsByPatientHandler)
	protected.GET("/:id", hb.GetBookingByIDHandler)
}

// RegisterUserRoutes registers user endpoints. The upsert and the admin
// check are public; the listing requires authentication and the promotion
// requires the admin role.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)

	r.GET("/user", middleware.AuthGuard(), hb.GetAllUsersHandler)
	r.PUT("/user/admin/:email",
		middleware.AuthGuard(),
		middleware.AdminGuard(hb.UserService),
		hb.PromoteUserHandler,
	)
}

// RegisterDoctorRoutes registers the admin-only doctor catalog endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctorGroup := r.Group("/doctor")
	doctorGroup.Use(middleware.AuthGuard(), middleware.AdminGuard(hb.UserService))
	doctorGroup.POST("", hb.AddDoctorHandler)
	doctorGroup.GET("", hb.GetDoctorsHandler)
	doctorGroup.DELETE("/:email", hb.DeleteDoctorHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Doctors portal server"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
