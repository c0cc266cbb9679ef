package usecase

import (
	"context"
	"errors"

	"task-dashboard/internal/dashboard/repository"
)

// Load restores tasks and theme. A missing key keeps the default silently;
// a corrupt value keeps the default and logs a warning.
func (uc *implUseCase) Load(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks, err := uc.repo.LoadTasks(ctx)
	switch {
	case err == nil:
		uc.tasks = tasks
	case errors.Is(err, repository.ErrNotFound):
	case errors.Is(err, repository.ErrCorrupt):
		uc.l.Warnf(ctx, "uc.Load LoadTasks: ignoring corrupt value: %v", err)
	default:
		uc.l.Errorf(ctx, "uc.Load LoadTasks: %v", err)
	}

	dark, err := uc.repo.LoadTheme(ctx)
	switch {
	case err == nil:
		uc.dark = dark
	case errors.Is(err, repository.ErrNotFound):
	case errors.Is(err, repository.ErrCorrupt):
		uc.l.Warnf(ctx, "uc.Load LoadTheme: ignoring corrupt value: %v", err)
	default:
		uc.l.Errorf(ctx, "uc.Load LoadTheme: %v", err)
	}

	uc.l.Infof(ctx, "uc.Load: restored %d tasks, dark=%t", len(uc.tasks), uc.dark)
}
