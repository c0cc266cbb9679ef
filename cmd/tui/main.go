package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"task-dashboard/config"
	kvRepo "task-dashboard/internal/dashboard/repository/kv"
	"task-dashboard/internal/dashboard/usecase"
	"task-dashboard/internal/notification"
	"task-dashboard/internal/tui"
	"task-dashboard/pkg/kvstore"
	"task-dashboard/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger, to a file so it does not draw over the UI
	logger := log.Init(log.ZapConfig{
		Level:       cfg.Logger.Level,
		Mode:        cfg.Logger.Mode,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{cfg.TUI.LogFile},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Dashboard TUI...")

	// 3. Storage
	store, err := kvstore.Open(ctx, kvstore.Config{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		DSN:    cfg.Storage.DSN,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		fmt.Println("Failed to open storage: ", err)
		return
	}
	defer store.Close()

	// 4. Dashboard domain
	notifier := notification.New(cfg.Dashboard.NotificationDuration)
	dashboardUC := usecase.New(logger, kvRepo.New(store, logger), notifier)
	defer dashboardUC.Close()
	dashboardUC.Load(ctx)

	// 5. Program
	p := tea.NewProgram(tui.New(ctx, logger, dashboardUC), tea.WithAltScreen(), tea.WithContext(ctx))
	notifier.OnChange(tui.Notify(p))

	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "TUI exited with error: ", err)
		fmt.Println("Error: ", err)
	}

	logger.Info(ctx, "TUI stopped")
}
