package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-detailing-backend/config"
	_ "go-detailing-backend/docs" // Important for Swagger
	v1 "go-detailing-backend/internal/delivery/http/v1"
	"go-detailing-backend/internal/usecase"
	"go-detailing-backend/pkg/email"
	"go-detailing-backend/pkg/logger"
	"go-detailing-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Auto Gamma Detailing API
// @version         1.0
// @description     Backend for the Auto Gamma detailing website: contact, booking and warranty form submissions relayed by email.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting detailing backend", "port", cfg.Port)

	// 3. Setup Email Service
	mailer := email.NewEmailService(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - submissions will be logged, not delivered")
	}

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterTagName(validate)
	contactUC := usecase.NewContactUsecase(mailer, validate, cfg.RecipientEmail)
	bookingUC := usecase.NewBookingUsecase(mailer, validate, cfg.RecipientEmail)
	warrantyUC := usecase.NewWarrantyUsecase(mailer, validate, cfg.RecipientEmail)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		BookingUC:  bookingUC,
		WarrantyUC: warrantyUC,
		Config:     cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
