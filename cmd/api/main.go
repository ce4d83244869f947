package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/config"
	"github.com/meubelwerk/offerte-api/internal/database"
	"github.com/meubelwerk/offerte-api/internal/http/handler"
	"github.com/meubelwerk/offerte-api/internal/http/middleware"
	"github.com/meubelwerk/offerte-api/internal/http/router"
	"github.com/meubelwerk/offerte-api/internal/jobs"
	"github.com/meubelwerk/offerte-api/internal/logger"
	"github.com/meubelwerk/offerte-api/internal/repository"
	"github.com/meubelwerk/offerte-api/internal/service"
)

// @title Meubelwerk Offerte API
// @version 1.0
// @description Quotation and margin calculation API for custom furniture workshops

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.String("driver", cfg.Database.Driver),
		zap.Int("port", cfg.App.Port),
	)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite installs have no separate migration step
	if cfg.Database.Driver == "sqlite" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	numberSequenceRepo := repository.NewNumberSequenceRepository(db)

	// Initialize services
	documentNumberService := service.NewDocumentNumberService(numberSequenceRepo, log)
	projectService := service.NewProjectService(projectRepo, settingsRepo, libraryRepo, documentNumberService, cfg.App.DocumentPrefix, log)
	libraryService := service.NewLibraryService(libraryRepo, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	todoService := service.NewTodoService(todoRepo, log)
	dashboardService := service.NewDashboardService(projectRepo, settingsRepo, todoRepo, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService, log)
	linesHandler := handler.NewProjectLinesHandler(projectService, log)
	libraryHandler := handler.NewLibraryHandler(libraryService, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, log)
	todoHandler := handler.NewTodoHandler(todoService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		projectHandler,
		linesHandler,
		libraryHandler,
		settingsHandler,
		todoHandler,
		dashboardHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)

		marginWatch := jobs.NewMarginWatchJob(projectRepo, settingsRepo, log)
		if err := scheduler.AddJob("margin-watch", cfg.Jobs.MarginWatchSchedule, marginWatch.Run); err != nil {
			log.Error("Failed to register margin watch job", zap.Error(err))
		}

		if err := scheduler.AddJob("todo-cleanup", cfg.Jobs.TodoCleanupSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := todoService.CleanupCompleted(ctx, cfg.Jobs.TodoRetentionDays); err != nil {
				log.Error("Todo cleanup failed", zap.Error(err))
			}
		}); err != nil {
			log.Error("Failed to register todo cleanup job", zap.Error(err))
		}

		scheduler.Start()
	} else {
		log.Info("Background jobs disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
