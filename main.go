package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	serviceRepoPkg "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.JWTSecret == "" {
		logger.Sugar().Fatal("main: JWT_SECRET must be configured before the server can issue or verify tokens")
	}

	database.InitDB()
	utils.InitRoleCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		RoleCache: utils.GetRoleCacheClient(),
		TokenTTL:  time.Duration(config.AppConfig.TokenTTLHours) * time.Hour,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}

	// handlers.
	serviceHandler := handlers.NewServiceHandler(serviceRepo, bookingRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		GetServicesHandler:  serviceHandler.GetServicesHandler,
		GetAvailableHandler: serviceHandler.GetAvailableHandler,

		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		GetBookingByIDHandler:       bookingHandler.GetBookingByIDHandler,
		GetBookingsByPatientHandler: bookingHandler.GetBookingsByPatientHandler,

		UpsertUserHandler:  userHandler.UpsertUserHandler,
		GetAllUsersHandler: userHandler.GetAllUsersHandler,
		CheckAdminHandler:  userHandler.CheckAdminHandler,
		PromoteUserHandler: userHandler.PromoteUserHandler,

		AddDoctorHandler:    doctorHandler.AddDoctorHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,
		GetDoctorsHandler:   doctorHandler.GetDoctorsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
