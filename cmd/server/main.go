package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/newscoope/content-api/internal/api"
	"github.com/newscoope/content-api/internal/blobstore"
	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/database"
	"github.com/newscoope/content-api/internal/mailer"
	"github.com/newscoope/content-api/internal/repository"
	"github.com/newscoope/content-api/internal/service"
	"github.com/newscoope/content-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting content API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Document store adapter; connects lazily on first use
	db := database.New(&cfg.Mongo, log)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := db.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to close document store connection")
		}
	}()

	// Initialize repositories
	repos := repository.New(db)

	// Blob store and notification sender
	blobs := blobstore.New(db, &cfg.Blob, log)
	sender := mailer.New(&cfg.SMTP, log)

	// Initialize services
	services := service.NewServices(repos, blobs, sender, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
