package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capture.IntervalSeconds != 60 {
		t.Errorf("IntervalSeconds = %d, want default 60", cfg.Capture.IntervalSeconds)
	}
	if cfg.LogDir == "" || cfg.StateDir == "" {
		t.Errorf("empty default dirs: %+v", cfg)
	}
	if len(cfg.Capture.ExcludeApps) == 0 {
		t.Errorf("default exclusion list should not be empty")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
log_dir: /tmp/sl-logs
state_dir: /tmp/sl-state
capture:
  interval_seconds: 30
  ocr_command: "shortcuts run ocr"
  exclude_apps:
    - 1Password
analyze:
  known_projects:
    - widget
    - gadget
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogDir != "/tmp/sl-logs" {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
	if cfg.Capture.IntervalSeconds != 30 {
		t.Errorf("IntervalSeconds = %d, want 30", cfg.Capture.IntervalSeconds)
	}
	if cfg.Capture.OCRCommand != "shortcuts run ocr" {
		t.Errorf("OCRCommand = %q", cfg.Capture.OCRCommand)
	}
	if len(cfg.Analyze.KnownProjects) != 2 || cfg.Analyze.KnownProjects[0] != "widget" {
		t.Errorf("KnownProjects = %v", cfg.Analyze.KnownProjects)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCREENLOG_LOG_DIR", "/tmp/env-logs")
	t.Setenv("SCREENLOG_CAPTURE_INTERVAL", "15")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogDir != "/tmp/env-logs" {
		t.Errorf("LogDir = %q, want env override", cfg.LogDir)
	}
	if cfg.Capture.IntervalSeconds != 15 {
		t.Errorf("IntervalSeconds = %d, want env override 15", cfg.Capture.IntervalSeconds)
	}
}

func TestLoadBadInterval(t *testing.T) {
	t.Setenv("SCREENLOG_CAPTURE_INTERVAL", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capture.IntervalSeconds != 60 {
		t.Errorf("IntervalSeconds = %d, want default on bad env value", cfg.Capture.IntervalSeconds)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for malformed yaml")
	}
}
