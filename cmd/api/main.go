package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-dashboard/config"
	_ "task-dashboard/docs" // Swagger docs
	kvRepo "task-dashboard/internal/dashboard/repository/kv"
	"task-dashboard/internal/dashboard/usecase"
	"task-dashboard/internal/httpserver"
	"task-dashboard/internal/notification"
	"task-dashboard/pkg/kvstore"
	"task-dashboard/pkg/log"
)

// @title       Task Dashboard API
// @description Add, edit, delete and search tasks, with a persisted light/dark theme.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	store, err := kvstore.Open(ctx, kvstore.Config{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		DSN:    cfg.Storage.DSN,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	// 4. Dashboard domain
	repo := kvRepo.New(store, logger)
	dashboardUC := usecase.New(logger, repo, notification.New(cfg.Dashboard.NotificationDuration))
	defer dashboardUC.Close()
	dashboardUC.Load(ctx)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		DashboardUseCase: dashboardUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
