package daylog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Observation is one screen capture as written to the per-day log: the
// capture timestamp, the foreground window string ("App | Title" or bare
// app name), and whatever text OCR recognized on screen (possibly empty).
type Observation struct {
	Timestamp string `json:"timestamp"`
	Window    string `json:"window"`
	OCRText   string `json:"ocr_text"`
}

// Log is an append-only store of observations, one JSONL file per day
// (logs/YYYY-MM-DD.jsonl).
type Log struct {
	dir string
	mu  sync.Mutex
}

// New creates a day log rooted at dir
func New(dir string) *Log {
	return &Log{dir: dir}
}

// Path returns the log file path for a date (YYYY-MM-DD)
func (l *Log) Path(date string) string {
	return filepath.Join(l.dir, date+".jsonl")
}

// Append writes one observation to the log file for its own day.
// The day is taken from the observation's timestamp.
func (l *Log) Append(obs Observation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts, err := ParseTimestamp(obs.Timestamp)
	if err != nil {
		return fmt.Errorf("bad observation timestamp: %w", err)
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	path := l.Path(ts.Format("2006-01-02"))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(obs)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// LoadDay reads all observations for a date (YYYY-MM-DD). A missing file
// yields an empty slice. Blank and malformed lines are skipped.
func (l *Log) LoadDay(date string) ([]Observation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.Path(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Observation
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obs Observation
		if err := json.Unmarshal([]byte(line), &obs); err != nil {
			continue // skip malformed entries
		}
		entries = append(entries, obs)
	}
	return entries, nil
}

// Dates returns the days (YYYY-MM-DD) that have a log file, oldest first
func (l *Log) Dates() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.dir, "*.jsonl"))
	if err != nil {
		return nil, err
	}
	var dates []string
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), ".jsonl")
		if _, err := time.Parse("2006-01-02", name); err == nil {
			dates = append(dates, name)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// timestampLayouts are tried in order by ParseTimestamp
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601-ish timestamp. Any timezone offset is
// dropped: the wall-clock fields are kept as-is, so observations logged with
// and without offsets compare consistently within one day.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Re-anchor the wall clock in the local zone, discarding the offset
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
