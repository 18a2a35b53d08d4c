package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawhub/config"
	"pawhub/database"
	availabilityRepo "pawhub/database/repository/availability"
	bookingRepo "pawhub/database/repository/booking"
	"pawhub/handlers"
	"pawhub/middleware"
	"pawhub/routes"
	"pawhub/services/booking"
	"pawhub/services/schedule"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := availability.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		BookingRepo:      bookings,
		AvailabilityRepo: availability,
		Cache:            utils.GetCacheClient(),
		CacheTTL:         time.Duration(config.AppConfig.ScheduleCacheTTL) * time.Second,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Scheduler: scheduleService,
		Payments:  booking.NewStripePaymentProcessor(logger),
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CheckConflictsHandler:    scheduleHandler.CheckConflictsHandler,
		GetAvailableSlotsHandler: scheduleHandler.GetAvailableSlotsHandler,
		GetScheduleHandler:       scheduleHandler.GetScheduleHandler,
		GetUnavailableHandler:    scheduleHandler.GetUnavailableHandler,

		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		ApproveBookingHandler:    bookingHandler.ApproveBookingHandler,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		RescheduleBookingHandler: bookingHandler.RescheduleBookingHandler,

		DeclareUnavailableHandler: availabilityHandler.DeclareUnavailableHandler,
		ClearUnavailableHandler:   availabilityHandler.ClearUnavailableHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
