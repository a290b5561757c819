// File: harwin/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"harwin/config"
	"harwin/database"
	"harwin/database/repository"
	"harwin/handlers"
	"harwin/routes"
	"harwin/services/booking"
	"harwin/services/notification"
	"harwin/utils"
)

func main() {
	cfg := config.Load()
	utils.InitializeLogger(cfg.IsProduction())
	logger := utils.GetLogger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := repository.NewGormBookingRepo(db)

	// services.
	notificationService := notification.NewMailNotificationService(cfg.MailUser, cfg.MailPass)
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Notification: notificationService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := cfg.AppPort
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
