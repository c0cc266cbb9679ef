package usecase

import (
	"context"

	"task-dashboard/internal/dashboard"
)

func (uc *implUseCase) ToggleTheme(ctx context.Context) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.dark = !uc.dark
	if err := uc.repo.SaveTheme(ctx, uc.dark); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleTheme SaveTheme: %v", err)
	}
	return uc.view()
}
