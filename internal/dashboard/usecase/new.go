package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/dashboard/repository"
	"task-dashboard/internal/model"
	"task-dashboard/internal/notification"
	pkgLog "task-dashboard/pkg/log"
)

var _ dashboard.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of dashboard.UseCase.
// mu serializes every operation so each one runs to completion before the next.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier *notification.Notifier
	newID    func() string
	now      func() time.Time

	mu        sync.Mutex
	tasks     []model.Task
	dark      bool
	query     string
	addOpen   bool
	editOpen  bool
	editingID string
	draft     string
}

// New creates a new dashboard UseCase implementation with empty state.
// Call Load to restore persisted state.
func New(l pkgLog.Logger, repo repository.Repository, notifier *notification.Notifier) *implUseCase {
	if notifier == nil {
		notifier = notification.New(notification.DefaultDuration)
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		newID:    uuid.NewString,
		now:      time.Now,
		tasks:    []model.Task{},
	}
}

func (uc *implUseCase) Close() {
	uc.notifier.Stop()
}
