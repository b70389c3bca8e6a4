package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oasis-backend/config"
	"oasis-backend/controllers"
	"oasis-backend/routes"
	"oasis-backend/services"
	"oasis-backend/utils"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg := config.LoadApp()
	logger, err := utils.NewLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("⚠️  .env not found; continuing with environment variables")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("❌ Database connect failed", zap.Error(err))
	}
	db := config.DB
	if db == nil {
		logger.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	logger.Info("✅ Database connection established and migrations applied")

	// Initialize services
	services.StorageLocation = config.DBLocation

	cabinService := services.NewCabinService(db)
	settingsService := services.NewSettingsService(db)
	selectionService := services.NewSelectionService(cabinService, settingsService, cfg.SessionTTL, cfg.BookingWindowYears)
	reservationService := services.NewReservationService(db, cabinService, settingsService, selectionService, cfg.BookingWindowYears)
	confirmationService := services.NewConfirmationService(reservationService)

	router := routes.SetupRouter(cfg, logger, routes.Controllers{
		Cabins:       controllers.NewCabinController(cabinService),
		Settings:     controllers.NewSettingsController(settingsService),
		Selections:   controllers.NewSelectionController(selectionService),
		Reservations: controllers.NewReservationController(reservationService, confirmationService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ ListenAndServe()", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ Server stopped gracefully", zap.Int("open_selections", selectionService.Len()))
}
