package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/dashboard/repository"
	"task-dashboard/internal/model"
	"task-dashboard/pkg/kvstore"
)

// storedTask is the JSON shape of one element under the "tasks" key.
type storedTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *implRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := r.get(ctx, dashboard.KeyTasks)
	if err != nil {
		return nil, err
	}

	tasks, legacy, err := r.decodeTasks(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, dashboard.KeyTasks, err)
	}

	// Rewrite legacy values once so the IDs just assigned survive a restart.
	if legacy {
		if err := r.SaveTasks(ctx, tasks); err != nil {
			r.l.Warnf(ctx, "kv repository: migrate legacy %s: %v", dashboard.KeyTasks, err)
		} else {
			r.l.Infof(ctx, "kv repository: migrated %d legacy tasks", len(tasks))
		}
	}
	return tasks, nil
}

func (r *implRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	out := make([]storedTask, len(tasks))
	for i, t := range tasks {
		out[i] = storedTask{ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt}
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToSave, dashboard.KeyTasks, err)
	}
	return r.set(ctx, dashboard.KeyTasks, string(raw))
}

// decodeTasks accepts the current object format and the legacy browser
// format, a bare array of strings. Entries without an ID get fresh ones and
// legacy is reported true so the caller can write them back.
func (r *implRepository) decodeTasks(raw string) (tasks []model.Task, legacy bool, err error) {
	var stored []storedTask
	if err := json.Unmarshal([]byte(raw), &stored); err == nil {
		tasks = make([]model.Task, 0, len(stored))
		for _, st := range stored {
			title := strings.TrimSpace(st.Title)
			if title == "" {
				continue
			}
			id := st.ID
			if id == "" {
				id = r.newID()
				legacy = true
			}
			tasks = append(tasks, model.Task{ID: id, Title: title, CreatedAt: st.CreatedAt})
		}
		return tasks, legacy, nil
	}

	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return nil, false, err
	}

	now := r.now()
	tasks = make([]model.Task, 0, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		tasks = append(tasks, model.Task{ID: r.newID(), Title: title, CreatedAt: now})
	}
	return tasks, true, nil
}

func (r *implRepository) get(ctx context.Context, key string) (string, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", repository.ErrNotFound
	}
	if errors.Is(err, kvstore.ErrCorrupt) {
		return "", fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, key, err)
	}
	if err != nil {
		r.l.Errorf(ctx, "kv repository: get %s: %v", key, err)
		return "", fmt.Errorf("%w: %s: %v", repository.ErrFailedToLoad, key, err)
	}
	return raw, nil
}

func (r *implRepository) set(ctx context.Context, key, value string) error {
	if err := r.store.Set(ctx, key, value); err != nil {
		r.l.Errorf(ctx, "kv repository: set %s: %v", key, err)
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToSave, key, err)
	}
	return nil
}
