// Package history persists one summary row per analyzed day in SQLite, so
// past days can be listed without re-reading and re-analyzing their logs.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hirose30/screen-logger/internal/analyze"
)

// Store wraps the SQLite connection for the day history
type Store struct {
	db   *sql.DB
	path string
}

// Day is one saved day row
type Day struct {
	Date             string  `json:"date"`
	CaptureCount     int     `json:"capture_count"`
	ActiveRate       float64 `json:"active_rate"`
	TotalWorkMinutes int     `json:"total_work_minutes"`
	TopApp           string  `json:"top_app"`
	Summary          *analyze.Summary
}

// Open opens or creates the history database under stateDir
func Open(stateDir string) (*Store, error) {
	dbPath := filepath.Join(stateDir, "history.db")

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS days (
			date TEXT PRIMARY KEY,
			capture_count INTEGER NOT NULL DEFAULT 0,
			active_rate REAL NOT NULL DEFAULT 0,
			total_work_minutes INTEGER NOT NULL DEFAULT 0,
			top_app TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '{}',
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Save upserts the row for one analyzed day. Re-analyzing a day overwrites
// its previous row.
func (s *Store) Save(r *analyze.Result) error {
	if r.NoData() {
		return fmt.Errorf("refusing to save day %s: %s", r.Date, r.Error)
	}

	summary := analyze.Summarize(r)
	blob, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	topApp := ""
	if len(r.AppUsage) > 0 {
		topApp = r.AppUsage[0].App
	}

	_, err = s.db.Exec(`
		INSERT INTO days (date, capture_count, active_rate, total_work_minutes, top_app, summary, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(date) DO UPDATE SET
			capture_count = excluded.capture_count,
			active_rate = excluded.active_rate,
			total_work_minutes = excluded.total_work_minutes,
			top_app = excluded.top_app,
			summary = excluded.summary,
			updated_at = excluded.updated_at
	`, r.Date, r.ActivitySummary.TotalCaptures, r.ActivitySummary.ActiveRate,
		r.ActivitySummary.TotalWorkMinutes, topApp, string(blob))
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", r.Date, err)
	}
	return nil
}

// Get loads one day, or (nil, nil) if the day was never saved
func (s *Store) Get(date string) (*Day, error) {
	row := s.db.QueryRow(`
		SELECT date, capture_count, active_rate, total_work_minutes, top_app, summary
		FROM days WHERE date = ?
	`, date)

	day, err := scanDay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load day %s: %w", date, err)
	}
	return day, nil
}

// Recent returns up to limit saved days, newest first
func (s *Store) Recent(limit int) ([]Day, error) {
	if limit <= 0 {
		limit = 7
	}
	rows, err := s.db.Query(`
		SELECT date, capture_count, active_rate, total_work_minutes, top_app, summary
		FROM days ORDER BY date DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	var days []Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, *day)
	}
	return days, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (*Day, error) {
	var day Day
	var blob string
	if err := row.Scan(&day.Date, &day.CaptureCount, &day.ActiveRate,
		&day.TotalWorkMinutes, &day.TopApp, &blob); err != nil {
		return nil, err
	}
	var summary analyze.Summary
	if err := json.Unmarshal([]byte(blob), &summary); err == nil {
		day.Summary = &summary
	}
	return &day, nil
}
