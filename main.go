// File: consultly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultly/config"
	"consultly/cron"
	"consultly/database"
	bookingRepoPkg "consultly/database/repository/booking"
	expertRepoPkg "consultly/database/repository/expert"
	reviewRepoPkg "consultly/database/repository/review"
	userRepoPkg "consultly/database/repository/user"
	"consultly/handlers"
	"consultly/routes"
	"consultly/services/availability"
	"consultly/services/booking"
	"consultly/services/events"
	"consultly/services/expert"
	"consultly/services/review"
	"consultly/services/tasks"
	"consultly/services/user"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	expertRepo := expertRepoPkg.NewMongoExpertRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndexes()
	if err := expertRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure expert indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}
	if err := reviewRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure review indexes: %v", err)
	}

	// Event hub and background reminder queue.
	hub := events.NewHub()
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(hub)

	// services.
	availService := &availability.DefaultService{
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
	}
	authService := &user.DefaultAuthService{
		Repo:   userRepo,
		Tokens: user.NewRedisTokenStore(),
	}
	expertService := &expert.DefaultExpertService{
		Repo:   expertRepo,
		Events: hub,
		Cache:  expert.NewRedisProfileCache(),
	}
	sessionService := &booking.DefaultSessionService{
		Store:       booking.NewRedisSessionStore(),
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
		Payment:     booking.NewStripePaymentHandler(logger),
		Avail:       availService,
		Events:      hub,
		Reminders:   tasks.NewAsynqReminderScheduler(asynqClient),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		ExpertRepo: expertRepo,
		Avail:      availService,
		Events:     hub,
	}
	reviewService := &review.DefaultService{
		Repo:        reviewRepo,
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     authService,
		Experts:  expertService,
		Avail:    availService,
		Sessions: sessionService,
		Bookings: bookingService,
		Reviews:  reviewService,
		Hub:      hub,
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
