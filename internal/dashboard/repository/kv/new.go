package kv

import (
	"time"

	"github.com/google/uuid"

	"task-dashboard/internal/dashboard/repository"
	"task-dashboard/pkg/kvstore"
	pkgLog "task-dashboard/pkg/log"
)

type implRepository struct {
	store kvstore.Store
	l     pkgLog.Logger
	newID func() string
	now   func() time.Time
}

// New creates a Repository on top of a key-value store.
func New(store kvstore.Store, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
		newID: uuid.NewString,
		now:   time.Now,
	}
}
