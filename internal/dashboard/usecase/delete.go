package usecase

import (
	"context"
	"slices"

	"task-dashboard/internal/dashboard"
)

// Delete removes the task with the given ID. Unknown IDs leave the list
// untouched and return ErrTaskNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id string) (dashboard.View, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return uc.view(), dashboard.ErrTaskNotFound
	}

	uc.tasks = slices.Delete(uc.tasks, i, i+1)
	uc.saveTasks(ctx)

	if uc.editingID == id {
		uc.closeEdit()
	}

	uc.l.Debugf(ctx, "uc.Delete: id=%s", id)
	return uc.view(), nil
}
