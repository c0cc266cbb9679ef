package usecase

import (
	"context"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

// DismissNotification hides a toast early. Clickaway dismissals are ignored.
func (uc *implUseCase) DismissNotification(ctx context.Context, input dashboard.DismissInput) (dashboard.View, error) {
	if !input.Kind.Valid() {
		return uc.View(ctx), dashboard.ErrUnknownNotification
	}
	if input.Reason != model.DismissReasonClickaway {
		uc.notifier.Dismiss(input.Kind)
	}
	return uc.View(ctx), nil
}
