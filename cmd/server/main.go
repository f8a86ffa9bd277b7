package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api"
	"github.com/ndewijer/Booking-Operations-Backend/internal/config"
	"github.com/ndewijer/Booking-Operations-Backend/internal/database"
	"github.com/ndewijer/Booking-Operations-Backend/internal/logging"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/scheduler"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
	"github.com/ndewijer/Booking-Operations-Backend/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Setup(cfg.Log.Level, cfg.Environment)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o750); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("Failed to create database directory")
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Str("version", version.Version).Msg("Connected to database")

	// Create repositories
	bookingRepo := repository.NewBookingRepository(db)
	fxRepo := repository.NewFxRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	analyticsService := service.NewAnalyticsService(bookingRepo)
	bookingService := service.NewBookingService(bookingRepo, analyticsService)
	fxService := service.NewFxService(db, fxRepo)

	// Create router
	router := api.NewRouter(systemService, bookingService, analyticsService, fxService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var jobs *scheduler.Scheduler
	if cfg.Scheduler.SnapshotCron != "" {
		jobs = scheduler.New(ctx, analyticsService)
		if err := jobs.Register(cfg.Scheduler.SnapshotCron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Scheduler.SnapshotCron).Msg("Failed to register scheduled jobs")
		}
		jobs.RunNow()
		jobs.Start()
	}

	g, ctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if jobs != nil {
			jobs.Stop()
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}

	log.Info().Msg("Server exited")
}
