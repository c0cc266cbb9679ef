package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/dashboard/repository"
)

func (r *implRepository) LoadTheme(ctx context.Context) (bool, error) {
	raw, err := r.get(ctx, dashboard.KeyTheme)
	if err != nil {
		return false, err
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		return false, fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, dashboard.KeyTheme, err)
	}
	return dark, nil
}

func (r *implRepository) SaveTheme(ctx context.Context, dark bool) error {
	raw, _ := json.Marshal(dark)
	return r.set(ctx, dashboard.KeyTheme, string(raw))
}
