// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simsea/internal/config"
	"simsea/internal/db"
	"simsea/internal/repository"
	"simsea/internal/routes"
	"simsea/internal/services"
)

// @title SIMSEA API
// @version 1.0
// @description Project monitoring records for the SIMSEA bioregional programme.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	ctx := context.Background()

	// Create database if missing, connect and migrate
	database, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer database.Close()

	accounts := services.NewAccountService(repository.NewUserRepository(database.DB, repository.NewRetryPolicy(cfg.RetryAttempts, cfg.RetryBaseDelay, logger)), logger)
	if _, err := accounts.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.WithError(err).Fatal("failed to bootstrap admin account")
	}

	// S3 is optional, publishing is disabled without it
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		if !errors.Is(err, config.ErrS3NotConfigured) {
			logger.WithError(err).Warn("S3 unavailable, export publishing disabled")
		}
		s3Config = nil
	}

	// Create router and setup routes
	router := routes.SetupRoutes(database.DB, cfg, s3Config, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give server 5 seconds to finish current requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exiting")
}
