package dashboard

import "task-dashboard/internal/model"

// Persisted storage keys.
const (
	KeyTasks = "tasks"
	KeyTheme = "theme"
)

// NoTasksFound is the placeholder shown when nothing matches the query.
const NoTasksFound = "No tasks found"

// --- UseCase Inputs ---

type AddInput struct {
	Title string
}

type UpdateInput struct {
	Title string
}

type SearchInput struct {
	Query string
}

type DismissInput struct {
	Kind   model.NotificationKind
	Reason string
}

// --- UseCase Outputs ---

// AddOutput reports whether a task was appended. Added is false when the
// title was blank; that is not an error.
type AddOutput struct {
	Added bool
	Task  model.Task
	View  View
}

// UpdateOutput reports whether the task under the edit cursor was replaced.
type UpdateOutput struct {
	Updated bool
	Task    model.Task
	View    View
}

// Notification is a visible toast.
type Notification struct {
	Kind    model.NotificationKind
	Message string
}

// View is a snapshot of everything the presentation layer renders.
type View struct {
	Tasks   []model.Task
	Visible []model.Task
	Query   string
	// Empty is true when Visible has no tasks; render NoTasksFound instead of a list.
	Empty bool

	Dark  bool
	Theme model.Theme

	AddDialogOpen  bool
	EditDialogOpen bool
	EditingID      string
	Draft          string

	Notifications []Notification
}
