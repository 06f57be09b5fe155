// Package classify labels each observation of a day as active or idle.
//
// Idleness is inferred from visual stasis: an unchanged foreground window
// showing a near-identical screen across samples means nobody is
// interacting. No OS input events are available, so this is the only signal.
package classify

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hirose30/screen-logger/internal/daylog"
	"github.com/hirose30/screen-logger/internal/similarity"
)

const (
	// SimilarityThreshold: OCR text at least this similar to the previous
	// sample counts as "screen effectively unchanged".
	SimilarityThreshold = 0.95

	// MinOCRLength: trimmed OCR text shorter than this is treated as empty
	// (screensaver, lock screen).
	MinOCRLength = 20
)

// Entry is one observation with its activity labels and derived fields
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Window    string    `json:"window"`
	OCRText   string    `json:"ocr_text"`
	AppName   string    `json:"app_name"`
	IsActive  bool      `json:"is_active"`
	IsIdle    bool      `json:"is_idle"`
	OCREmpty  bool      `json:"ocr_empty"`
}

// AppName extracts the application name from an "App | Title" window string
func AppName(window string) string {
	if strings.Contains(window, " | ") {
		window = strings.SplitN(window, " | ", 2)[0]
	}
	return strings.TrimRight(strings.TrimSpace(window), " |")
}

// Classify labels every observation in input order. Observations with an
// unparseable timestamp are dropped. Exactly one of IsActive/IsIdle is set
// on each entry.
func Classify(observations []daylog.Observation) []Entry {
	if len(observations) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(observations))

	var (
		prevWindow string
		prevText   string
		havePrev   bool
	)

	for _, obs := range observations {
		ts, err := daylog.ParseTimestamp(obs.Timestamp)
		if err != nil {
			continue
		}

		ocrEmpty := utf8.RuneCountInString(strings.TrimSpace(obs.OCRText)) < MinOCRLength

		var isActive bool
		switch {
		case !havePrev:
			isActive = !ocrEmpty
		case ocrEmpty:
			// Screensaver or lock screen
			isActive = false
		default:
			windowChanged := obs.Window != prevWindow
			similar := similarity.Ratio(obs.OCRText, prevText) >= SimilarityThreshold
			isActive = windowChanged || !similar
		}

		entries = append(entries, Entry{
			Timestamp: ts,
			Window:    obs.Window,
			OCRText:   obs.OCRText,
			AppName:   AppName(obs.Window),
			IsActive:  isActive,
			IsIdle:    !isActive,
			OCREmpty:  ocrEmpty,
		})

		prevWindow = obs.Window
		prevText = obs.OCRText
		havePrev = true
	}

	return entries
}
