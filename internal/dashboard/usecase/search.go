package usecase

import (
	"context"
	"strings"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

// Search stores the query and returns the filtered view. It is recomputed on
// every call.
func (uc *implUseCase) Search(ctx context.Context, input dashboard.SearchInput) dashboard.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.query = input.Query
	return uc.view()
}

// filterTasks keeps tasks whose title contains query, ignoring case, in their
// original order. An empty query keeps everything.
func filterTasks(tasks []model.Task, query string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	if query == "" {
		return append(out, tasks...)
	}

	q := strings.ToLower(query)
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, t)
		}
	}
	return out
}
