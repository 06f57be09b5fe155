// Package config loads the YAML configuration file and applies environment
// overrides. Everything has a usable default so the tool runs with no config
// file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full tool configuration
type Config struct {
	LogDir   string        `yaml:"log_dir"`
	StateDir string        `yaml:"state_dir"`
	Capture  CaptureConfig `yaml:"capture"`
	Analyze  AnalyzeConfig `yaml:"analyze"`
}

// CaptureConfig controls the capture loop
type CaptureConfig struct {
	IntervalSeconds       int      `yaml:"interval_seconds"`
	OCRCommand            string   `yaml:"ocr_command"`
	ExcludeApps           []string `yaml:"exclude_apps"`
	ExcludeWindowPatterns []string `yaml:"exclude_window_patterns"`
}

// AnalyzeConfig controls the analysis pipeline
type AnalyzeConfig struct {
	KnownProjects []string `yaml:"known_projects"`
}

// Default returns the configuration used when no file and no env overrides
// are present
func Default() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".screen-logger")
	return &Config{
		LogDir:   filepath.Join(base, "logs"),
		StateDir: filepath.Join(base, "state"),
		Capture: CaptureConfig{
			IntervalSeconds: 60,
			OCRCommand:      "",
			ExcludeApps:     []string{"1Password", "Bitwarden", "Keychain Access"},
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty, then applies SCREENLOG_* env overrides. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".screen-logger", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.Capture.IntervalSeconds <= 0 {
		cfg.Capture.IntervalSeconds = 60
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SCREENLOG_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if v := os.Getenv("SCREENLOG_STATE_DIR"); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv("SCREENLOG_CAPTURE_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Capture.IntervalSeconds = n
		}
	}
	if v := os.Getenv("SCREENLOG_OCR_COMMAND"); v != "" {
		c.Capture.OCRCommand = v
	}
}
