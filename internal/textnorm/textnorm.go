// Package textnorm strips recognized-UI noise from raw OCR text.
//
// Cleaning is a pure function over an ordered rule table: chrome patterns are
// blanked out first, then lines that are empty, too short, or match a
// noise-only line pattern are dropped. Cleaning normalized text again is a
// no-op, so downstream consumers may re-clean freely.
package textnorm

import (
	"strings"
	"unicode/utf8"
)

// minLineLength is the shortest line kept after filtering, in runes
const minLineLength = 3

// Clean removes menu/UI noise from OCR text and returns the surviving
// content lines joined by newlines. Returns "" for empty input.
func Clean(ocrText string) string {
	if ocrText == "" {
		return ""
	}

	cleaned := ocrText
	for _, re := range menuNoisePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	var kept []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) < minLineLength {
			continue
		}
		if isNoiseLine(line) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func isNoiseLine(line string) bool {
	for _, re := range lineNoisePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
