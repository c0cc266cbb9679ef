package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/dashboard/repository"
	"task-dashboard/internal/dashboard/repository/kv"
	"task-dashboard/internal/dashboard/usecase"
	"task-dashboard/internal/model"
	"task-dashboard/internal/notification"
	"task-dashboard/pkg/kvstore"
)

// recordingLogger counts warnings and errors.
type recordingLogger struct {
	warns  int
	errors int
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *recordingLogger) Warn(ctx context.Context, arg ...any)                     { m.warns++ }
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warns++ }
func (m *recordingLogger) Error(ctx context.Context, arg ...any)                    { m.errors++ }
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.errors++ }
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// failingRepo fails every write.
type failingRepo struct {
	repository.Repository
}

func (r failingRepo) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return errors.New("disk full")
}

func (r failingRepo) SaveTheme(ctx context.Context, dark bool) error {
	return errors.New("disk full")
}

type fixture struct {
	uc    dashboard.UseCase
	store *kvstore.Memory
	repo  repository.Repository
	l     *recordingLogger
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kvstore.NewMemory()
	l := &recordingLogger{}
	repo := kv.New(store, l)
	uc := usecase.New(l, repo, notification.New(time.Minute))
	t.Cleanup(uc.Close)
	uc.Load(context.Background())
	return fixture{uc: uc, store: store, repo: repo, l: l}
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustAdd(t *testing.T, uc dashboard.UseCase, title string) model.Task {
	t.Helper()
	out, err := uc.Add(context.Background(), dashboard.AddInput{Title: title})
	if err != nil || !out.Added {
		t.Fatalf("add %q: added=%v err=%v", title, out.Added, err)
	}
	return out.Task
}

func findID(t *testing.T, v dashboard.View, title string) string {
	t.Helper()
	for _, task := range v.Tasks {
		if task.Title == title {
			return task.ID
		}
	}
	t.Fatalf("task %q not in view", title)
	return ""
}
