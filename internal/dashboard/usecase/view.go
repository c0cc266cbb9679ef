package usecase

import (
	"context"
	"slices"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

var notificationKinds = []model.NotificationKind{
	model.NotificationAdded,
	model.NotificationUpdated,
}

func (uc *implUseCase) View(ctx context.Context) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.view()
}

// view builds a snapshot. Callers must hold mu.
func (uc *implUseCase) view() dashboard.View {
	visible := filterTasks(uc.tasks, uc.query)

	var notes []dashboard.Notification
	for _, kind := range notificationKinds {
		if uc.notifier.Visible(kind) {
			notes = append(notes, dashboard.Notification{Kind: kind, Message: kind.Message()})
		}
	}

	return dashboard.View{
		Tasks:          slices.Clone(uc.tasks),
		Visible:        visible,
		Query:          uc.query,
		Empty:          len(visible) == 0,
		Dark:           uc.dark,
		Theme:          model.ThemeOf(uc.dark),
		AddDialogOpen:  uc.addOpen,
		EditDialogOpen: uc.editOpen,
		EditingID:      uc.editingID,
		Draft:          uc.draft,
		Notifications:  notes,
	}
}
