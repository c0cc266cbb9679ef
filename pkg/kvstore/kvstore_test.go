package kvstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"task-dashboard/pkg/kvstore"
)

func openStores(t *testing.T) map[string]kvstore.Store {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	file, err := kvstore.Open(ctx, kvstore.Config{Driver: kvstore.DriverFile, Path: filepath.Join(dir, "store", "kv.json")})
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	sqlite, err := kvstore.Open(ctx, kvstore.Config{Driver: kvstore.DriverSQLite, Path: filepath.Join(dir, "kv.db")})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]kvstore.Store{
		"memory": kvstore.NewMemory(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestStores(t *testing.T) {
	ctx := context.Background()

	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(ctx, "tasks"); !errors.Is(err, kvstore.ErrNotFound) {
				t.Fatalf("expected ErrNotFound for missing key, got %v", err)
			}

			if err := s.Set(ctx, "tasks", `["Buy milk"]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "theme", "true"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "tasks", `["Buy milk","Call Alice"]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			got, err := s.Get(ctx, "tasks")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got != `["Buy milk","Call Alice"]` {
				t.Errorf("expected last write to win, got %q", got)
			}

			theme, err := s.Get(ctx, "theme")
			if err != nil || theme != "true" {
				t.Errorf("unexpected theme value %q, err %v", theme, err)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")

	s1, err := kvstore.NewFile(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := s1.Set(ctx, "theme", "false"); err != nil {
		t.Fatalf("set: %v", err)
	}

	s2, err := kvstore.NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, err := s2.Get(ctx, "theme")
	if err != nil || v != "false" {
		t.Errorf("expected persisted value, got %q err %v", v, err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := kvstore.NewFile(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	t.Run("Get Reports Corrupt", func(t *testing.T) {
		_, err := s.Get(ctx, "tasks")
		if !errors.Is(err, kvstore.ErrCorrupt) {
			t.Errorf("expected ErrCorrupt, got %v", err)
		}
	})

	t.Run("Set Recovers", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if err := s.Set(ctx, "tasks", "[]"); err != nil {
				t.Fatalf("set %d: %v", i, err)
			}
		}
		if err := s.Set(ctx, "theme", "true"); err != nil {
			t.Fatalf("set theme: %v", err)
		}

		if v, err := s.Get(ctx, "tasks"); err != nil || v != "[]" {
			t.Errorf("tasks = %q, err %v", v, err)
		}
		if v, err := s.Get(ctx, "theme"); err != nil || v != "true" {
			t.Errorf("theme = %q, err %v", v, err)
		}

		bad, err := os.ReadFile(path + ".corrupt")
		if err != nil {
			t.Fatalf("corrupt file not kept aside: %v", err)
		}
		if string(bad) != "{not json" {
			t.Errorf("corrupt copy = %q", bad)
		}
	})
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := kvstore.Open(context.Background(), kvstore.Config{Driver: "redis"})
	if !errors.Is(err, kvstore.ErrUnknownDriver) {
		t.Errorf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	ctx := context.Background()
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	f, err := kvstore.NewFile("")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if want := filepath.Join(xdg, kvstore.AppName, kvstore.DefaultFileName); f.Path() != want {
		t.Errorf("file path = %q, want %q", f.Path(), want)
	}

	s, err := kvstore.NewSQLite(ctx, "")
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer s.Close()
	if err := s.Set(ctx, "theme", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(xdg, kvstore.AppName, kvstore.DefaultSQLiteFileName)); err != nil {
		t.Errorf("sqlite file not created under data dir: %v", err)
	}
}
