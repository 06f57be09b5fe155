package daylog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndLoadDay(t *testing.T) {
	l := New(t.TempDir())

	observations := []Observation{
		{Timestamp: "2025-06-01T09:00:00", Window: "ghostty", OCRText: "terminal output"},
		{Timestamp: "2025-06-01T09:01:00", Window: "Obsidian | notes.md", OCRText: "meeting notes"},
	}
	for _, obs := range observations {
		if err := l.Append(obs); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	loaded, err := l.LoadDay("2025-06-01")
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d observations, want 2", len(loaded))
	}
	if loaded[1].Window != "Obsidian | notes.md" {
		t.Errorf("Window = %q", loaded[1].Window)
	}
	if loaded[0].OCRText != "terminal output" {
		t.Errorf("OCRText = %q", loaded[0].OCRText)
	}
}

func TestAppendRoutesByObservationDate(t *testing.T) {
	l := New(t.TempDir())

	// An observation written after midnight lands in its own day's file
	if err := l.Append(Observation{Timestamp: "2025-06-02T00:05:00", Window: "ghostty", OCRText: "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	prev, err := l.LoadDay("2025-06-01")
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(prev) != 0 {
		t.Errorf("previous day has %d observations, want 0", len(prev))
	}

	next, err := l.LoadDay("2025-06-02")
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(next) != 1 {
		t.Errorf("observation day has %d observations, want 1", len(next))
	}
}

func TestLoadDayMissingFile(t *testing.T) {
	l := New(t.TempDir())
	loaded, err := l.LoadDay("2025-06-01")
	if err != nil {
		t.Fatalf("LoadDay on missing file: %v", err)
	}
	if loaded != nil {
		t.Errorf("got %v, want nil", loaded)
	}
}

func TestLoadDaySkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)

	content := `{"timestamp":"2025-06-01T09:00:00","window":"ghostty","ocr_text":"ok"}
not json at all
{"timestamp":"2025-06-01T09:01:00","window":"ghostty","ocr_text":"also ok"}

`
	if err := os.WriteFile(filepath.Join(dir, "2025-06-01.jsonl"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := l.LoadDay("2025-06-01")
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("got %d observations, want 2 (malformed and blank lines skipped)", len(loaded))
	}
}

func TestDates(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)

	for _, name := range []string{"2025-06-02.jsonl", "2025-06-01.jsonl", "notes.txt", "junk.jsonl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	dates, err := l.Dates()
	if err != nil {
		t.Fatalf("Dates: %v", err)
	}
	want := []string{"2025-06-01", "2025-06-02"}
	if len(dates) != len(want) {
		t.Fatalf("got %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		bad   bool
	}{
		{"plain", "2025-06-01T09:30:15", time.Date(2025, 6, 1, 9, 30, 15, 0, time.Local), false},
		{"fractional", "2025-06-01T09:30:15.123456", time.Date(2025, 6, 1, 9, 30, 15, 123456000, time.Local), false},
		{"offset dropped", "2025-06-01T09:30:15+09:00", time.Date(2025, 6, 1, 9, 30, 15, 0, time.Local), false},
		{"utc dropped", "2025-06-01T09:30:15Z", time.Date(2025, 6, 1, 9, 30, 15, 0, time.Local), false},
		{"whitespace trimmed", "  2025-06-01T09:30:15  ", time.Date(2025, 6, 1, 9, 30, 15, 0, time.Local), false},
		{"garbage", "yesterday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input)
			if tc.bad {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
