package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the directory name used under the user's data home.
	AppName = "task-dashboard"

	// DefaultFileName is the store file inside the data directory.
	DefaultFileName = "storage.json"

	// corruptSuffix is appended to an undecodable store file before it is
	// replaced by a fresh one.
	corruptSuffix = ".corrupt"

	// DefaultSQLiteFileName is the sqlite database inside the data directory.
	DefaultSQLiteFileName = "storage.db"
)

// File keeps every key in a single JSON object on disk. Each Set rewrites the
// whole file through a temp file and rename, so a crash never leaves a torn file.
// An undecodable file makes Get return ErrCorrupt; the next Set moves it to
// <path>.corrupt and starts a new one.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a file-backed Store. An empty path resolves to DefaultPath().
func NewFile(path string) (*File, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("kvstore: create dir: %w", err)
	}
	return &File{path: path}, nil
}

// DefaultPath is DefaultFileName inside DataDir().
func DefaultPath() string {
	return filepath.Join(DataDir(), DefaultFileName)
}

// DataDir uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// Path returns the file location.
func (s *File) Path() string { return s.path }

func (s *File) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *File) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if errors.Is(err, ErrCorrupt) {
		// Keep the unreadable file aside and start over so writes keep landing.
		if err := os.Rename(s.path, s.path+corruptSuffix); err != nil {
			return fmt.Errorf("kvstore: move aside %s: %w", s.path, err)
		}
		m = make(map[string]string)
	} else if err != nil {
		return err
	}
	m[key] = value
	return s.write(m)
}

func (s *File) Close() error { return nil }

func (s *File) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: read %s: %w", s.path, err)
	}

	m := make(map[string]string)
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, s.path, err)
	}
	return m, nil
}

func (s *File) write(m map[string]string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("kvstore: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*.json")
	if err != nil {
		return fmt.Errorf("kvstore: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("kvstore: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvstore: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("kvstore: rename: %w", err)
	}
	return nil
}
