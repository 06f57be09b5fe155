// Package workctx derives a lightweight work context from one observation:
// which project, document, or web service the screen most likely shows.
//
// Extraction is heuristic and total: no match leaves a field unset, never
// errors. It consults only the values it is given, so the same observation
// always yields the same context.
package workctx

import (
	"regexp"
	"strings"
)

// Context is the derived description of what the user was doing in a single
// observation. All fields are optional.
type Context struct {
	Project     string `json:"project,omitempty"`
	Document    string `json:"document,omitempty"`
	URLDomain   string `json:"url_domain,omitempty"`
	PageTitle   string `json:"page_title,omitempty"`
	Description string `json:"description,omitempty"`

	// OCRFailed marks a browser observation whose OCR text was empty, where
	// only the window title was available.
	OCRFailed bool `json:"ocr_failed,omitempty"`
}

// Category is the application family an extractor rule set applies to
type Category int

const (
	CategoryOther Category = iota
	CategoryBrowser
	CategoryNotes
	CategoryTerminal
	CategoryEditor
)

// DetectCategory maps an app name onto its extraction category by
// case-insensitive substring match.
func DetectCategory(appName string) Category {
	app := strings.ToLower(appName)
	switch {
	case containsAny(app, "chrome", "arc", "safari", "firefox"):
		return CategoryBrowser
	case strings.Contains(app, "obsidian"):
		return CategoryNotes
	case containsAny(app, "ghostty", "terminal", "iterm"):
		return CategoryTerminal
	case containsAny(app, "code", "cursor", "electron"):
		return CategoryEditor
	}
	return CategoryOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Extractor derives work contexts. The known-project list comes from
// configuration and seeds the project detection in editor and fallback
// extraction.
type Extractor struct {
	projects []string
}

// NewExtractor creates an extractor with the given known project names
func NewExtractor(knownProjects []string) *Extractor {
	return &Extractor{projects: knownProjects}
}

// Extract derives the work context for one observation. rawOCR is the text
// exactly as recognized; cleaning is applied internally where a rule wants
// noise-free lines.
func (e *Extractor) Extract(rawOCR, window, appName string) Context {
	var ctx Context

	switch DetectCategory(appName) {
	case CategoryBrowser:
		e.extractBrowser(rawOCR, window, &ctx)
	case CategoryNotes:
		extractNotes(window, &ctx)
	case CategoryTerminal:
		extractTerminal(rawOCR, &ctx)
	case CategoryEditor:
		e.extractEditor(rawOCR, window, &ctx)
	}

	// Generic known-project scan for anything the category rules missed
	if ctx.Project == "" {
		ctx.Project = e.findKnownProject(rawOCR)
	}

	return ctx
}

// findKnownProject returns the first configured project name present in the
// text (case-insensitive), or "".
func (e *Extractor) findKnownProject(text string) string {
	lower := strings.ToLower(text)
	for _, proj := range e.projects {
		if strings.Contains(lower, strings.ToLower(proj)) {
			return proj
		}
	}
	return ""
}

// windowTitle returns the title half of an "App | Title" window string
func windowTitle(window string) string {
	if !strings.Contains(window, " | ") {
		return ""
	}
	parts := strings.SplitN(window, " | ", 2)
	return strings.TrimSpace(parts[1])
}

// truncRunes shortens s to at most n runes
func truncRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

var japaneseRe = regexp.MustCompile(`[ぁ-んァ-ヶ一-龥]`)

// hasJapanese reports whether the line contains hiragana, katakana, or kanji
func hasJapanese(s string) bool {
	return japaneseRe.MatchString(s)
}
