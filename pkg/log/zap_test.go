package log_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"task-dashboard/pkg/log"
)

func TestInitWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l := log.Init(log.ZapConfig{
		Level:       "info",
		Mode:        log.ModeProduction,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{path},
	})

	ctx := context.Background()
	l.Debugf(ctx, "hidden %d", 1)
	l.Infof(ctx, "task added: %s", "Buy milk")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "task added: Buy milk") {
		t.Errorf("expected info line in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level, got %q", out)
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := log.NewNop()
	ctx := context.Background()
	l.Info(ctx, "ignored")
	l.Warnf(ctx, "ignored %s", "too")
	l.Error(ctx, "ignored")
}
