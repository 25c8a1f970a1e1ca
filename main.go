package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicportal/config"
	"clinicportal/database"
	bookingRepoPkg "clinicportal/database/repository/booking"
	catalogRepoPkg "clinicportal/database/repository/catalog"
	userRepoPkg "clinicportal/database/repository/user"
	"clinicportal/handlers"
	"clinicportal/middleware"
	"clinicportal/routes"
	"clinicportal/services/availability"
	"clinicportal/services/booking"
	"clinicportal/services/user"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.StartHealthMonitor(database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	twoQueryResolver := &availability.TwoQueryResolver{
		CatalogRepo: catalogRepo,
		BookingRepo: bookingRepo,
	}
	aggregateResolver := &availability.AggregateResolver{
		CatalogRepo: catalogRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(twoQueryResolver, aggregateResolver)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAppointmentOptionsHandler:   availabilityHandler.GetAppointmentOptionsHandler,
		GetAppointmentOptionsV2Handler: availabilityHandler.GetAppointmentOptionsV2Handler,

		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		GetBookingsByEmailHandler: bookingHandler.GetBookingsByEmailHandler,

		CreateUserHandler: userHandler.CreateUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
