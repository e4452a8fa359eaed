package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/csa-rae/gantt-api/docs"
	"github.com/csa-rae/gantt-api/internal/config"
	"github.com/csa-rae/gantt-api/internal/database"
	"github.com/csa-rae/gantt-api/internal/http/handler"
	"github.com/csa-rae/gantt-api/internal/http/middleware"
	"github.com/csa-rae/gantt-api/internal/http/router"
	"github.com/csa-rae/gantt-api/internal/jobs"
	"github.com/csa-rae/gantt-api/internal/logger"
	"github.com/csa-rae/gantt-api/internal/repository"
	"github.com/csa-rae/gantt-api/internal/service"
	"go.uber.org/zap"
)

// @title CSA Gantt API
// @version 1.0
// @description Read-only aggregation API serving Gantt chart data with financial annotations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

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
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	// Connect to the legacy project tracking database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	subprojectRepo := repository.NewSubprojectRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	readyInvoiceRepo := repository.NewReadyInvoiceRepository(db)
	unpaidInvoiceRepo := repository.NewUnpaidInvoiceRepository(db)

	// Initialize services
	ganttService := service.NewGanttService(
		projectRepo,
		subprojectRepo,
		invoiceRepo,
		readyInvoiceRepo,
		unpaidInvoiceRepo,
		log,
	)

	// Initialize middleware and handlers
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	ganttHandler := handler.NewGanttHandler(ganttService, log)

	// Setup router
	rt := router.NewRouter(cfg, log, db, rateLimiter, ganttHandler)

	// Optional background job logging pool statistics
	var scheduler *jobs.Scheduler
	if cfg.Jobs.PoolStatsEnabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterPoolStatsJob(scheduler, db, log, cfg.Jobs.PoolStatsCron); err != nil {
			log.Error("Failed to register pool stats job", zap.Error(err))
		} else {
			scheduler.Start()
		}
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
