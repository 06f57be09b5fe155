// Package capture runs the periodic screen sampler: read the frontmost
// window, screenshot, OCR, and append one observation to the day log. The
// platform pieces sit behind small interfaces so the loop itself is testable
// anywhere.
package capture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hirose30/screen-logger/internal/daylog"
	"github.com/hirose30/screen-logger/internal/logging"
)

// WindowSource reports the frontmost app and window title
type WindowSource interface {
	FrontWindow(ctx context.Context) (app, title string, err error)
}

// Screen captures one display to a file and reports whether the display is
// asleep. Display numbers are 1-indexed; ActiveDisplay resolves the display
// holding the frontmost window so multi-monitor setups only capture the
// screen being worked on.
type Screen interface {
	Capture(ctx context.Context, path string, display int) error
	ActiveDisplay(ctx context.Context) int
	DisplayAsleep(ctx context.Context) bool
}

// OCR extracts text from a screenshot file
type OCR interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Config controls one Runner
type Config struct {
	Interval              time.Duration
	TempDir               string
	ExcludeApps           []string
	ExcludeWindowPatterns []string
}

// Runner drives the capture loop
type Runner struct {
	cfg     Config
	windows WindowSource
	screen  Screen
	ocr     OCR
	log     *daylog.Log
}

// NewRunner wires a capture loop
func NewRunner(cfg Config, windows WindowSource, screen Screen, ocr OCR, log *daylog.Log) *Runner {
	if cfg.Interval <= 0 {
		cfg.Interval = 60 * time.Second
	}
	return &Runner{
		cfg:     cfg,
		windows: windows,
		screen:  screen,
		ocr:     ocr,
		log:     log,
	}
}

// Run captures on every tick until ctx is cancelled
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	logging.Info("capture", "started (interval=%v)", r.cfg.Interval)
	for {
		if err := r.Once(ctx); err != nil {
			logging.Info("capture", "capture skipped: %v", err)
		}
		select {
		case <-ctx.Done():
			logging.Info("capture", "stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Once performs a single capture cycle and appends the observation.
// Skips silently on display sleep, excluded windows, and empty OCR output.
func (r *Runner) Once(ctx context.Context) error {
	if r.screen.DisplayAsleep(ctx) {
		logging.Debug("capture", "display asleep, skipping")
		return nil
	}

	app, title, err := r.windows.FrontWindow(ctx)
	if err != nil {
		return err
	}

	window := app
	if title != "" {
		window = app + " | " + title
	}

	if r.ShouldExclude(app, window) {
		logging.Debug("capture", "excluded window: %s", logging.Truncate(window, 60))
		return nil
	}

	imagePath := filepath.Join(r.cfg.TempDir, "screen-logger-capture.png")
	if err := r.screen.Capture(ctx, imagePath, r.screen.ActiveDisplay(ctx)); err != nil {
		return err
	}
	// The screenshot can contain anything on screen; never leave it behind,
	// OCR failure included.
	defer os.Remove(imagePath)

	text, err := r.ocr.Recognize(ctx, imagePath)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		logging.Debug("capture", "empty OCR result, skipping")
		return nil
	}

	obs := daylog.Observation{
		Timestamp: time.Now().Format("2006-01-02T15:04:05"),
		Window:    window,
		OCRText:   text,
	}
	if err := r.log.Append(obs); err != nil {
		return err
	}
	logging.Debug("capture", "logged %s (%d chars)", logging.Truncate(window, 60), len(text))
	return nil
}

// ShouldExclude reports whether the frontmost window must never be logged.
// App names match exactly; window patterns match as case-insensitive
// substrings of the full "App | Title" string, so a pattern may name either
// the app or the title.
func (r *Runner) ShouldExclude(app, window string) bool {
	for _, excluded := range r.cfg.ExcludeApps {
		if app == excluded {
			return true
		}
	}
	lower := strings.ToLower(window)
	for _, pattern := range r.cfg.ExcludeWindowPatterns {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
