package usecase

import (
	"context"
	"strings"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

// OpenEdit points the edit cursor at id and preloads the draft with its title.
func (uc *implUseCase) OpenEdit(ctx context.Context, id string) (dashboard.View, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return uc.view(), dashboard.ErrTaskNotFound
	}

	uc.editingID = id
	uc.draft = uc.tasks[i].Title
	uc.editOpen = true
	return uc.view(), nil
}

func (uc *implUseCase) CancelEdit(ctx context.Context) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.closeEdit()
	return uc.view()
}

// Update replaces the title of the task under the edit cursor. No cursor or
// a blank title is a no-op. A cursor whose task has since been deleted closes
// the dialog and returns ErrTaskNotFound.
func (uc *implUseCase) Update(ctx context.Context, input dashboard.UpdateInput) (dashboard.UpdateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	title := strings.TrimSpace(input.Title)
	if uc.editingID == "" || title == "" {
		return dashboard.UpdateOutput{View: uc.view()}, nil
	}

	i := uc.indexOf(uc.editingID)
	if i < 0 {
		uc.closeEdit()
		return dashboard.UpdateOutput{View: uc.view()}, dashboard.ErrTaskNotFound
	}

	uc.tasks[i].Title = title
	task := uc.tasks[i]
	uc.saveTasks(ctx)

	uc.closeEdit()
	uc.notifier.Show(model.NotificationUpdated)

	uc.l.Debugf(ctx, "uc.Update: id=%s title=%q", task.ID, task.Title)
	return dashboard.UpdateOutput{Updated: true, Task: task, View: uc.view()}, nil
}

func (uc *implUseCase) closeEdit() {
	uc.editOpen = false
	uc.editingID = ""
	uc.draft = ""
}
