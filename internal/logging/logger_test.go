package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestInfoPrefixesSubsystem(t *testing.T) {
	out := captureOutput(t, func() {
		Info("capture", "started (interval=%ds)", 60)
	})
	if !strings.Contains(out, "[capture] started (interval=60s)") {
		t.Errorf("output = %q", out)
	}
}

func TestDebugGate(t *testing.T) {
	tests := []struct {
		value string
		shown bool
	}{
		{"", false},
		{"false", false},
		{"true", true},
		{"1", true},
		{"yes", false},
	}

	for _, tc := range tests {
		t.Run("SCREENLOG_DEBUG="+tc.value, func(t *testing.T) {
			t.Setenv("SCREENLOG_DEBUG", tc.value)
			out := captureOutput(t, func() {
				Debug("analyze", "classified %d observations", 42)
			})
			if got := strings.Contains(out, "classified 42 observations"); got != tc.shown {
				t.Errorf("shown = %v, want %v (output %q)", got, tc.shown, out)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short unchanged", "ghostty | zsh", 60, "ghostty | zsh"},
		{"flattens newlines", "line one\nline two", 60, "line one line two"},
		{"trims after flatten", "  padded  \n", 60, "padded"},
		{"caps with ellipsis", "abcdefghij", 5, "abcde..."},
		{"exactly at limit", "abcde", 5, "abcde"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.maxLen); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	// Multibyte text must cut on rune boundaries, not bytes
	got := Truncate("日本語のテキスト", 3)
	if got != "日本語..." {
		t.Errorf("Truncate = %q, want %q", got, "日本語...")
	}
	if !strings.HasPrefix(got, "日本語") {
		t.Errorf("truncated text corrupted: %q", got)
	}
}
