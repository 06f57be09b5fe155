// Package session groups contiguous active observations into work sessions
// and derives the per-hour and per-work-item rollups reports are built from.
package session

import (
	"fmt"

	"github.com/hirose30/screen-logger/internal/workctx"
)

// SubActivity records a change of description inside an otherwise-continuous
// session.
type SubActivity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// ContentSummary is the flattened, capped view of everything mined from a
// session's observations.
type ContentSummary struct {
	Keywords      []string       `json:"keywords,omitempty"`
	Repos         []string       `json:"repos,omitempty"`
	Documents     []string       `json:"documents,omitempty"`
	SearchQueries []string       `json:"search_queries,omitempty"`
	Topics        []string       `json:"topics,omitempty"`
	Snippets      []string       `json:"snippets,omitempty"`
	Emails        *workctx.Emails `json:"emails,omitempty"`
}

// Session is a maximal run of active observations sharing one context key,
// capped at MaxSessionMinutes. Start/End are wall-clock "HH:MM".
type Session struct {
	Start           string          `json:"start"`
	End             string          `json:"end"`
	DurationMinutes int             `json:"duration_minutes"`
	DurationDisplay string          `json:"duration_display"`
	App             string          `json:"app"`
	Description     string          `json:"description"`
	Project         string          `json:"project,omitempty"`
	Document        string          `json:"document,omitempty"`
	URLDomain       string          `json:"url_domain,omitempty"`
	PageTitle       string          `json:"page_title,omitempty"`
	SubActivities   []SubActivity   `json:"sub_activities,omitempty"`
	AllActivities   []string        `json:"all_activities,omitempty"`
	ContentDetails  *ContentSummary `json:"content_details,omitempty"`
}

// FormatDuration renders minutes as "45m", "2h", or "1h30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
