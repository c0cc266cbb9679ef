package repository

import (
	"context"

	"task-dashboard/internal/model"
)

// Repository persists the dashboard's durable state.
type Repository interface {
	TaskRepository
	ThemeRepository
}

// TaskRepository stores the ordered task list.
type TaskRepository interface {
	// LoadTasks returns ErrNotFound when nothing was saved yet and
	// ErrCorrupt when the stored value cannot be decoded.
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// ThemeRepository stores the dark-mode flag.
type ThemeRepository interface {
	LoadTheme(ctx context.Context) (bool, error)
	SaveTheme(ctx context.Context, dark bool) error
}
