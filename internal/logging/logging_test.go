package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"unitcheck/internal/config"
)

func TestConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, nil)
	logger.Printf("hello %d", 1)

	if !strings.Contains(buf.String(), "unitcheck: ") || !strings.Contains(buf.String(), "hello 1") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(dir, "nested", "run.log")

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg)
	logger.Println("run finished")

	data, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "run finished") {
		t.Errorf("log file missing line: %q", data)
	}
	if !strings.Contains(buf.String(), "run finished") {
		t.Errorf("console missing line: %q", buf.String())
	}
}

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	old := now.AddDate(0, 0, -6)

	logPath := filepath.Join(dir, "run.log")
	touch(t, logPath, old)

	stale := filepath.Join(dir, "run.log.20000101-000000")
	touch(t, stale, old)

	recent := filepath.Join(dir, "run.log."+now.AddDate(0, 0, -2).Format(stampLayout))
	touch(t, recent, old)

	unrelated := filepath.Join(dir, "run.log.bak")
	touch(t, unrelated, old)

	rotate(logPath, 5*24*time.Hour, now)

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("expected %s to be rotated away", logPath)
	}
	rotated := logPath + "." + now.Format(stampLayout)
	data, err := os.ReadFile(rotated)
	if err != nil {
		t.Fatalf("rotated log must survive the prune: %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("rotated log content changed: %q", data)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("expected stale rotated log to be removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Errorf("rotated log within the keep window must stay: %v", err)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Errorf("file without a rotation stamp must be kept: %v", err)
	}
}

func TestRotationThenReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(dir, "run.log")
	cfg.Logging.RotationDays = 5
	touch(t, cfg.Logging.File, time.Now().AddDate(0, 0, -6))

	var buf bytes.Buffer
	newLogger(&buf, cfg).Println("fresh run")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the new log and one rotated copy, got %d entries", len(entries))
	}
	data, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fresh run") || strings.Contains(string(data), "line\n") {
		t.Errorf("new log should only hold the new run, got %q", data)
	}
}

func TestNoRotationForFreshLog(t *testing.T) {
	now := time.Now()
	logPath := filepath.Join(t.TempDir(), "run.log")
	touch(t, logPath, now.Add(-time.Hour))

	rotate(logPath, 5*24*time.Hour, now)

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("fresh log must stay in place: %v", err)
	}
}
