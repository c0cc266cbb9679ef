package usecase

import "context"

// indexOf returns the position of the task with id, or -1.
func (uc *implUseCase) indexOf(id string) int {
	for i, t := range uc.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// saveTasks mirrors the list to storage. A failed write is logged and
// otherwise ignored; the in-memory list stays authoritative.
func (uc *implUseCase) saveTasks(ctx context.Context) {
	if err := uc.repo.SaveTasks(ctx, uc.tasks); err != nil {
		uc.l.Errorf(ctx, "uc.saveTasks SaveTasks: %v", err)
	}
}
