package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"unitcheck/internal/term"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ColorMode() != term.ModeAuto {
		t.Errorf("expected color auto, got %q", cfg.Color)
	}
	if cfg.Logging.RotationDays != 30 {
		t.Errorf("expected rotation_days 30, got %d", cfg.Logging.RotationDays)
	}
	if cfg.Metrics.Port != 0 {
		t.Errorf("expected metrics disabled, got port %d", cfg.Metrics.Port)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
color: never
logging:
  file: /tmp/unitcheck/../unitcheck/run.log
  rotation_days: 7
metrics:
  port: 9102
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ColorMode() != term.ModeNever {
		t.Errorf("expected color never, got %q", cfg.Color)
	}
	if cfg.Logging.File != "/tmp/unitcheck/run.log" {
		t.Errorf("expected cleaned log path, got %q", cfg.Logging.File)
	}
	if cfg.Logging.RotationDays != 7 {
		t.Errorf("expected rotation_days 7, got %d", cfg.Logging.RotationDays)
	}
	if cfg.MetricsAddress() != ":9102" {
		t.Errorf("expected :9102, got %s", cfg.MetricsAddress())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ColorMode() != term.ModeAuto {
		t.Errorf("expected color auto, got %q", cfg.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad color", "color: purple\n", "color"},
		{"negative port", "metrics:\n  port: -1\n", "metrics.port"},
		{"huge port", "metrics:\n  port: 70000\n", "metrics.port"},
		{"relative log file", "logging:\n  file: run.log\n", "logging.file"},
		{"unknown field", "colour: never\n", "decode yaml"},
		{"not yaml", "color: [\n", "decode yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "open config") {
		t.Errorf("expected open config error, got %v", err)
	}
}
