package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-dashboard/internal/dashboard"
	dashboardHTTP "task-dashboard/internal/dashboard/delivery/http"
	"task-dashboard/internal/dashboard/repository/kv"
	"task-dashboard/internal/dashboard/usecase"
	"task-dashboard/internal/middleware"
	"task-dashboard/internal/notification"
	"task-dashboard/pkg/kvstore"
	pkgLog "task-dashboard/pkg/log"
	"task-dashboard/pkg/response"
)

// ── Helpers ────────────────────────────────────────────────────────────────

type taskJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type viewJSON struct {
	Tasks          []taskJSON `json:"tasks"`
	Visible        []taskJSON `json:"visible"`
	Query          string     `json:"query"`
	Empty          bool       `json:"empty"`
	Placeholder    string     `json:"placeholder"`
	Dark           bool       `json:"dark"`
	Theme          string     `json:"theme"`
	AddDialogOpen  bool       `json:"add_dialog_open"`
	EditDialogOpen bool       `json:"edit_dialog_open"`
	EditingID      string     `json:"editing_id"`
	Draft          string     `json:"draft"`
	Notifications  []struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"notifications"`
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	store  *kvstore.Memory
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNop()
	store := kvstore.NewMemory()
	uc := usecase.New(l, kv.New(store, l), notification.New(time.Minute))
	t.Cleanup(uc.Close)
	uc.Load(context.Background())

	engine := gin.New()
	mw := middleware.New(l, middleware.Config{})
	dashboardHTTP.RegisterRoutes(engine.Group("/api/v1/dashboard"), dashboardHTTP.New(l, uc), mw)

	return &server{t: t, engine: engine, store: store}
}

func (s *server) do(method, path string, body any) (int, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		s.t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func (s *server) view(method, path string, body any) viewJSON {
	s.t.Helper()
	code, env := s.do(method, path, body)
	if code != http.StatusOK {
		s.t.Fatalf("%s %s: expected 200, got %d (%s)", method, path, code, env.Message)
	}
	var v viewJSON
	if err := json.Unmarshal(env.Data, &v); err != nil {
		s.t.Fatalf("decode view: %v", err)
	}
	return v
}

func (s *server) add(title string) (added bool, task taskJSON, v viewJSON) {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/v1/dashboard/tasks", map[string]string{"title": title})
	if code != http.StatusOK {
		s.t.Fatalf("add %q: expected 200, got %d (%s)", title, code, env.Message)
	}
	var out struct {
		Added bool     `json:"added"`
		Task  taskJSON `json:"task"`
		View  viewJSON `json:"view"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		s.t.Fatal(err)
	}
	return out.Added, out.Task, out.View
}

// brokenUseCase fails Delete with an error the handler does not know.
type brokenUseCase struct {
	dashboard.UseCase
}

func (brokenUseCase) Delete(ctx context.Context, id string) (dashboard.View, error) {
	return dashboard.View{}, errors.New("storage exploded")
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestDashboardHandlers(t *testing.T) {
	t.Run("Empty Dashboard", func(t *testing.T) {
		s := newServer(t)
		v := s.view(http.MethodGet, "/api/v1/dashboard", nil)
		if len(v.Tasks) != 0 || !v.Empty || v.Placeholder != "No tasks found" {
			t.Errorf("unexpected empty view %+v", v)
		}
		if v.Theme != "light" {
			t.Errorf("expected light theme, got %s", v.Theme)
		}
	})

	t.Run("Add Flow", func(t *testing.T) {
		s := newServer(t)
		if v := s.view(http.MethodPost, "/api/v1/dashboard/add-dialog", nil); !v.AddDialogOpen {
			t.Fatal("expected add dialog open")
		}

		added, task, v := s.add("  Buy milk ")
		if !added || task.Title != "Buy milk" || task.ID == "" {
			t.Errorf("unexpected add result added=%v task=%+v", added, task)
		}
		if v.AddDialogOpen {
			t.Error("expected add dialog closed")
		}
		if len(v.Notifications) != 1 || v.Notifications[0].Kind != "added" || v.Notifications[0].Message != "Task added successfully!" {
			t.Errorf("unexpected notifications %+v", v.Notifications)
		}

		raw, err := s.store.Get(context.Background(), "tasks")
		if err != nil || raw == "" {
			t.Errorf("expected tasks persisted, got %q err %v", raw, err)
		}
	})

	t.Run("Blank Add", func(t *testing.T) {
		s := newServer(t)
		s.view(http.MethodPost, "/api/v1/dashboard/add-dialog", nil)
		added, _, v := s.add("   ")
		if added || len(v.Tasks) != 0 || !v.AddDialogOpen {
			t.Errorf("blank add should be ignored, got added=%v view=%+v", added, v)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		s := newServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/tasks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		s := newServer(t)
		s.add("a")
		_, b, _ := s.add("b")
		s.add("c")

		v := s.view(http.MethodDelete, "/api/v1/dashboard/tasks/"+b.ID, nil)
		if len(v.Tasks) != 2 || v.Tasks[0].Title != "a" || v.Tasks[1].Title != "c" {
			t.Errorf("unexpected tasks after delete %+v", v.Tasks)
		}

		code, _ := s.do(http.MethodDelete, "/api/v1/dashboard/tasks/"+b.ID, nil)
		if code != http.StatusNotFound {
			t.Errorf("expected 404 for a deleted id, got %d", code)
		}
	})

	t.Run("Edit Flow", func(t *testing.T) {
		s := newServer(t)
		_, task, _ := s.add("Call Alice")

		v := s.view(http.MethodPost, "/api/v1/dashboard/tasks/"+task.ID+"/edit", nil)
		if !v.EditDialogOpen || v.EditingID != task.ID || v.Draft != "Call Alice" {
			t.Fatalf("unexpected edit state %+v", v)
		}

		code, env := s.do(http.MethodPut, "/api/v1/dashboard/edit", map[string]string{"title": "Call Bob"})
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var out struct {
			Updated bool     `json:"updated"`
			Task    taskJSON `json:"task"`
			View    viewJSON `json:"view"`
		}
		json.Unmarshal(env.Data, &out)
		if !out.Updated || out.Task.ID != task.ID || out.Task.Title != "Call Bob" {
			t.Errorf("unexpected update result %+v", out)
		}
		if out.View.EditDialogOpen {
			t.Error("expected edit dialog closed")
		}
	})

	t.Run("Unexpected Error Is 500", func(t *testing.T) {
		l := pkgLog.NewNop()
		engine := gin.New()
		dashboardHTTP.RegisterRoutes(engine.Group("/api/v1/dashboard"),
			dashboardHTTP.New(l, brokenUseCase{}), middleware.New(l, middleware.Config{}))
		s := &server{t: t, engine: engine}

		code, env := s.do(http.MethodDelete, "/api/v1/dashboard/tasks/any", nil)
		if code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", code)
		}
		if env.Message != response.DefaultErrorMessage {
			t.Errorf("expected the generic message, got %q", env.Message)
		}
	})

	t.Run("Edit Unknown", func(t *testing.T) {
		s := newServer(t)
		code, env := s.do(http.MethodPost, "/api/v1/dashboard/tasks/nope/edit", nil)
		if code != http.StatusNotFound || env.Message != "task not found" {
			t.Errorf("expected 404 task not found, got %d %q", code, env.Message)
		}
	})

	t.Run("Cancel Edit", func(t *testing.T) {
		s := newServer(t)
		_, task, _ := s.add("a")
		s.view(http.MethodPost, "/api/v1/dashboard/tasks/"+task.ID+"/edit", nil)
		v := s.view(http.MethodDelete, "/api/v1/dashboard/edit", nil)
		if v.EditDialogOpen || v.EditingID != "" {
			t.Errorf("expected edit closed, got %+v", v)
		}
	})

	t.Run("Search", func(t *testing.T) {
		s := newServer(t)
		s.add("Buy milk")
		s.add("Call Alice")
		s.add("Write report")

		v := s.view(http.MethodGet, "/api/v1/dashboard/search?q=AL", nil)
		if len(v.Visible) != 1 || v.Visible[0].Title != "Call Alice" || len(v.Tasks) != 3 {
			t.Errorf("unexpected search result %+v", v)
		}

		v = s.view(http.MethodGet, "/api/v1/dashboard?q=zzz", nil)
		if !v.Empty || len(v.Visible) != 0 || v.Placeholder != "No tasks found" {
			t.Errorf("expected empty placeholder, got %+v", v)
		}

		v = s.view(http.MethodGet, "/api/v1/dashboard", nil)
		if v.Query != "zzz" {
			t.Errorf("plain GET should keep the current query, got %q", v.Query)
		}
	})

	t.Run("Toggle Theme", func(t *testing.T) {
		s := newServer(t)
		v := s.view(http.MethodPost, "/api/v1/dashboard/theme/toggle", nil)
		if !v.Dark || v.Theme != "dark" {
			t.Errorf("expected dark, got %+v", v)
		}
		raw, _ := s.store.Get(context.Background(), "theme")
		if raw != "true" {
			t.Errorf("expected persisted theme, got %q", raw)
		}
	})

	t.Run("Dismiss Notification", func(t *testing.T) {
		s := newServer(t)
		s.add("a")

		v := s.view(http.MethodDelete, "/api/v1/dashboard/notifications/added?reason=clickaway", nil)
		if len(v.Notifications) != 1 {
			t.Errorf("clickaway should not dismiss, got %+v", v.Notifications)
		}

		v = s.view(http.MethodDelete, "/api/v1/dashboard/notifications/added", nil)
		if len(v.Notifications) != 0 {
			t.Errorf("expected dismissed, got %+v", v.Notifications)
		}

		code, _ := s.do(http.MethodDelete, "/api/v1/dashboard/notifications/bogus", nil)
		if code != http.StatusBadRequest {
			t.Errorf("expected 400 for unknown kind, got %d", code)
		}
	})
}
