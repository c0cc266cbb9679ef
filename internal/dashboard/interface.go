package dashboard

import "context"

// UseCase is the dashboard controller. It owns the task list, the theme flag
// and the transient dialog/search/notification state, and every operation
// returns the View the presentation layer should render next.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load restores persisted state once at startup. Missing or unreadable
	// values leave the defaults in place.
	Load(ctx context.Context)
	View(ctx context.Context) View

	OpenAdd(ctx context.Context) View
	CloseAdd(ctx context.Context) View
	Add(ctx context.Context, input AddInput) (AddOutput, error)

	Delete(ctx context.Context, id string) (View, error)

	OpenEdit(ctx context.Context, id string) (View, error)
	CancelEdit(ctx context.Context) View
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	Search(ctx context.Context, input SearchInput) View
	ToggleTheme(ctx context.Context) View
	DismissNotification(ctx context.Context, input DismissInput) (View, error)

	// Close stops pending notification timers.
	Close()
}
