package capture

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hirose30/screen-logger/internal/daylog"
)

type fakeWindows struct {
	app   string
	title string
}

func (f fakeWindows) FrontWindow(context.Context) (string, string, error) {
	return f.app, f.title, nil
}

// fakeScreen writes a placeholder file on capture so cleanup is observable
type fakeScreen struct {
	asleep          bool
	display         int
	captured        int
	capturedDisplay int
	lastPath        string
}

func (f *fakeScreen) Capture(_ context.Context, path string, display int) error {
	f.captured++
	f.capturedDisplay = display
	f.lastPath = path
	return os.WriteFile(path, []byte("png"), 0644)
}

func (f *fakeScreen) ActiveDisplay(context.Context) int {
	if f.display > 0 {
		return f.display
	}
	return 1
}

func (f *fakeScreen) DisplayAsleep(context.Context) bool { return f.asleep }

type fakeOCR struct {
	text string
	err  error
}

func (f fakeOCR) Recognize(context.Context, string) (string, error) {
	return f.text, f.err
}

func newTestRunner(t *testing.T, windows WindowSource, screen Screen, ocr OCR) (*Runner, *daylog.Log) {
	t.Helper()
	log := daylog.New(t.TempDir())
	runner := NewRunner(Config{
		Interval:              time.Minute,
		TempDir:               t.TempDir(),
		ExcludeApps:           []string{"1Password"},
		ExcludeWindowPatterns: []string{"private"},
	}, windows, screen, ocr, log)
	return runner, log
}

func todayObservations(t *testing.T, log *daylog.Log) []daylog.Observation {
	t.Helper()
	today := time.Now().Format("2006-01-02")
	observations, err := log.LoadDay(today)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	return observations
}

func TestOnceLogsObservation(t *testing.T) {
	runner, log := newTestRunner(t,
		fakeWindows{app: "ghostty", title: "zsh"},
		&fakeScreen{},
		fakeOCR{text: "terminal output visible here"},
	)

	if err := runner.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}

	observations := todayObservations(t, log)
	if len(observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(observations))
	}
	if observations[0].Window != "ghostty | zsh" {
		t.Errorf("Window = %q", observations[0].Window)
	}
	if !strings.Contains(observations[0].OCRText, "terminal output") {
		t.Errorf("OCRText = %q", observations[0].OCRText)
	}
}

func TestOnceCapturesActiveDisplay(t *testing.T) {
	screen := &fakeScreen{display: 2}
	runner, _ := newTestRunner(t,
		fakeWindows{app: "ghostty"},
		screen,
		fakeOCR{text: "output on the second monitor"},
	)

	if err := runner.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}
	if screen.capturedDisplay != 2 {
		t.Errorf("captured display %d, want the active display 2", screen.capturedDisplay)
	}
}

func TestOnceRemovesScreenshot(t *testing.T) {
	t.Run("after successful OCR", func(t *testing.T) {
		screen := &fakeScreen{}
		runner, _ := newTestRunner(t,
			fakeWindows{app: "ghostty"},
			screen,
			fakeOCR{text: "recognized content here"},
		)

		if err := runner.Once(context.Background()); err != nil {
			t.Fatalf("Once: %v", err)
		}
		if _, err := os.Stat(screen.lastPath); !os.IsNotExist(err) {
			t.Errorf("screenshot %s left on disk", screen.lastPath)
		}
	})

	t.Run("after OCR failure", func(t *testing.T) {
		screen := &fakeScreen{}
		runner, _ := newTestRunner(t,
			fakeWindows{app: "ghostty"},
			screen,
			fakeOCR{err: fmt.Errorf("ocr binary missing")},
		)

		if err := runner.Once(context.Background()); err == nil {
			t.Fatalf("expected OCR error")
		}
		if _, err := os.Stat(screen.lastPath); !os.IsNotExist(err) {
			t.Errorf("screenshot %s left on disk after OCR error", screen.lastPath)
		}
	})

	t.Run("after empty OCR", func(t *testing.T) {
		screen := &fakeScreen{}
		runner, _ := newTestRunner(t,
			fakeWindows{app: "ghostty"},
			screen,
			fakeOCR{text: "   "},
		)

		if err := runner.Once(context.Background()); err != nil {
			t.Fatalf("Once: %v", err)
		}
		if _, err := os.Stat(screen.lastPath); !os.IsNotExist(err) {
			t.Errorf("screenshot %s left on disk after empty OCR", screen.lastPath)
		}
	})
}

func TestOnceSkipsWhenDisplayAsleep(t *testing.T) {
	screen := &fakeScreen{asleep: true}
	runner, log := newTestRunner(t,
		fakeWindows{app: "ghostty"},
		screen,
		fakeOCR{text: "should never be logged"},
	)

	if err := runner.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}
	if screen.captured != 0 {
		t.Errorf("screen captured %d times while asleep", screen.captured)
	}
	if observations := todayObservations(t, log); len(observations) != 0 {
		t.Errorf("got %d observations, want 0", len(observations))
	}
}

func TestOnceSkipsEmptyOCR(t *testing.T) {
	runner, log := newTestRunner(t,
		fakeWindows{app: "ghostty"},
		&fakeScreen{},
		fakeOCR{text: "   \n  "},
	)

	if err := runner.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}
	if observations := todayObservations(t, log); len(observations) != 0 {
		t.Errorf("whitespace-only OCR should not be logged, got %d", len(observations))
	}
}

func TestOnceSkipsExcludedApp(t *testing.T) {
	screen := &fakeScreen{}
	runner, log := newTestRunner(t,
		fakeWindows{app: "1Password", title: "vault"},
		screen,
		fakeOCR{text: "secret content"},
	)

	if err := runner.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}
	if screen.captured != 0 {
		t.Errorf("excluded app should not be screenshotted")
	}
	if observations := todayObservations(t, log); len(observations) != 0 {
		t.Errorf("excluded app should not be logged")
	}
}

func TestShouldExclude(t *testing.T) {
	runner, _ := newTestRunner(t, fakeWindows{}, &fakeScreen{}, fakeOCR{})

	tests := []struct {
		app    string
		window string
		want   bool
	}{
		{"1Password", "1Password", true},
		{"ghostty", "ghostty", false},
		{"Google Chrome", "Google Chrome | Banking - Private Browsing", true},
		{"Google Chrome", "Google Chrome | GitHub", false},
		{"1password", "1password", false}, // app names match exactly
	}

	for _, tc := range tests {
		if got := runner.ShouldExclude(tc.app, tc.window); got != tc.want {
			t.Errorf("ShouldExclude(%q, %q) = %v, want %v", tc.app, tc.window, got, tc.want)
		}
	}
}

func TestShouldExcludePatternMatchesAppName(t *testing.T) {
	// Patterns see the full "App | Title" string, so one can target the app
	runner := NewRunner(Config{
		ExcludeWindowPatterns: []string{"keychain"},
	}, fakeWindows{}, &fakeScreen{}, fakeOCR{}, daylog.New(t.TempDir()))

	if !runner.ShouldExclude("Keychain Access", "Keychain Access | login") {
		t.Errorf("pattern naming the app should match the joined window string")
	}
	if runner.ShouldExclude("ghostty", "ghostty | editing notes") {
		t.Errorf("unrelated window should not match")
	}
}

func TestNewRunnerDefaultInterval(t *testing.T) {
	runner := NewRunner(Config{}, fakeWindows{}, &fakeScreen{}, fakeOCR{}, daylog.New(t.TempDir()))
	if runner.cfg.Interval != 60*time.Second {
		t.Errorf("Interval = %v, want default 60s", runner.cfg.Interval)
	}
}
