// Package logging provides small subsystem-prefixed logging helpers shared
// by the capture daemon and the CLI.
package logging

import (
	"log"
	"os"
	"strings"
)

// Info logs an informational message (always shown)
func Info(subsystem, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

// Debug logs a debug message, shown only when SCREENLOG_DEBUG is set
func Debug(subsystem, format string, args ...any) {
	if !debugEnabled() {
		return
	}
	log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

func debugEnabled() bool {
	switch os.Getenv("SCREENLOG_DEBUG") {
	case "true", "1":
		return true
	}
	return false
}

// Truncate flattens s to one line and caps it at maxLen runes with an
// ellipsis. Rune-based so OCR text (often CJK) is never cut mid-character.
func Truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
