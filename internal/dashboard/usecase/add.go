package usecase

import (
	"context"
	"strings"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

func (uc *implUseCase) OpenAdd(ctx context.Context) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.addOpen = true
	return uc.view()
}

// CloseAdd closes the add dialog and clears the input field.
func (uc *implUseCase) CloseAdd(ctx context.Context) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.closeAdd()
	return uc.view()
}

// Add appends the trimmed title. A blank title is ignored and the dialog is
// left as it was.
func (uc *implUseCase) Add(ctx context.Context, input dashboard.AddInput) (dashboard.AddOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return dashboard.AddOutput{View: uc.view()}, nil
	}

	task := model.Task{
		ID:        uc.newID(),
		Title:     title,
		CreatedAt: uc.now(),
	}
	uc.tasks = append(uc.tasks, task)
	uc.saveTasks(ctx)

	uc.closeAdd()
	uc.notifier.Show(model.NotificationAdded)

	uc.l.Debugf(ctx, "uc.Add: id=%s title=%q", task.ID, task.Title)
	return dashboard.AddOutput{Added: true, Task: task, View: uc.view()}, nil
}

func (uc *implUseCase) closeAdd() {
	uc.addOpen = false
	if !uc.editOpen {
		uc.draft = ""
	}
}
