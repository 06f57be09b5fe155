// Package report renders an analysis Result for humans: a markdown daily
// report and a styled terminal view. Both are pure projections of the
// Result, nothing is recomputed here.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hirose30/screen-logger/internal/analyze"
	"github.com/hirose30/screen-logger/internal/classify"
	"github.com/hirose30/screen-logger/internal/session"
)

// appPurposes describes what an app is typically used for in the usage table
var appPurposes = map[string]string{
	"Google Chrome": "web browsing / research",
	"Arc":           "web browsing / research",
	"Safari":        "web browsing",
	"Obsidian":      "notes and documents",
	"Slack":         "team communication",
	"Electron":      "editor work",
	"Antigravity":   "Claude Code work",
	"ghostty":       "terminal work",
	"Finder":        "file management",
	"Cursor":        "coding (AI-assisted)",
	"VS Code":       "coding",
}

// timelinePeriods order the quarter-day sections of the timeline
var timelinePeriods = []struct {
	label     string
	name      string
	startHour int
	endHour   int
}{
	{"00:00-06:00", "late night", 0, 6},
	{"06:00-12:00", "morning", 6, 12},
	{"12:00-18:00", "afternoon", 12, 18},
	{"18:00-24:00", "evening", 18, 24},
}

// Markdown renders the full daily report
func Markdown(r *analyze.Result) string {
	if r.NoData() {
		return fmt.Sprintf("# Error\n\n%s\n", r.Error)
	}

	var b strings.Builder
	basic := r.BasicStats
	summary := r.ActivitySummary

	firstClock := clockOf(basic.FirstTimestamp)
	lastClock := clockOf(basic.LastTimestamp)

	fmt.Fprintf(&b, "# Daily Work Report %s\n\n", r.Date)
	fmt.Fprintf(&b, "Logged period: %s - %s\n", firstClock, lastClock)
	fmt.Fprintf(&b, "Active work time: %s\n\n---\n\n", summary.TotalWorkDisplay)

	writeWorkSummary(&b, r.AggregatedWork)
	writeTimeline(&b, r)
	writeHourlyTable(&b, r.HourlyWorkMinutes)
	writeAppUsage(&b, r.AppUsage)
	writeTotals(&b, r)

	return b.String()
}

func writeWorkSummary(b *strings.Builder, aggregated []session.AggregatedWork) {
	b.WriteString("## Work Summary\n\n")
	if len(aggregated) == 0 {
		b.WriteString("(no work sessions)\n\n---\n\n")
		return
	}
	b.WriteString("| Work | Duration | When |\n")
	b.WriteString("|------|----------|------|\n")
	for i, work := range aggregated {
		if i >= 10 {
			break
		}
		label := work.App
		if work.Description != "" && work.Description != work.App+" work" {
			label = work.App + " - " + work.Description
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", label, work.TotalDisplay, work.TimeSummary)
	}
	b.WriteString("\n---\n\n")
}

func writeTimeline(b *strings.Builder, r *analyze.Result) {
	b.WriteString("## Timeline\n\n")
	for _, period := range timelinePeriods {
		fmt.Fprintf(b, "### %s | %s\n\n", period.label, period.name)

		wrote := false
		for _, s := range r.WorkSessions {
			hour := hourOfClock(s.Start)
			if hour >= period.startHour && hour < period.endHour {
				fmt.Fprintf(b, "- **%s**: %s (%s)\n", s.App, s.Description, s.DurationDisplay)
				wrote = true
			}
		}
		if !wrote {
			if periodHasIdle(r.IdlePeriods, period.startHour, period.endHour) {
				b.WriteString("- away (idle)\n")
			} else {
				b.WriteString("- (no records)\n")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")
}

func writeHourlyTable(b *strings.Builder, hourly []session.HourlyWork) {
	b.WriteString("## Hourly Work Minutes\n\n")
	b.WriteString("| Hour | Minutes | Main app |\n")
	b.WriteString("|------|---------|----------|\n")
	for _, h := range hourly {
		fmt.Fprintf(b, "| %s | %dm | %s |\n", h.Hour, h.WorkMinutes, h.MainApp)
	}
	b.WriteString("\n---\n\n")
}

func writeAppUsage(b *strings.Builder, usage []analyze.AppUsage) {
	b.WriteString("## App Usage\n\n")
	b.WriteString("| App | Typical use |\n")
	b.WriteString("|-----|-------------|\n")
	shown := make(map[string]bool)
	for i, u := range usage {
		if i >= 10 {
			break
		}
		if u.App == "" || shown[u.App] {
			continue
		}
		shown[u.App] = true
		purpose := appPurposes[u.App]
		if purpose == "" {
			purpose = u.App + " work"
		}
		fmt.Fprintf(b, "| %s | %s |\n", u.App, purpose)
	}
	b.WriteString("\n---\n\n")
}

func writeTotals(b *strings.Builder, r *analyze.Result) {
	basic := r.BasicStats
	summary := r.ActivitySummary

	activeRate := 0.0
	if basic.DurationMinutes > 0 {
		activeRate = float64(summary.TotalWorkMinutes) / float64(basic.DurationMinutes) * 100
	}

	b.WriteString("## Totals\n\n")
	fmt.Fprintf(b, "- **Logged time**: %s\n", session.FormatDuration(basic.DurationMinutes))
	fmt.Fprintf(b, "- **Active work time**: %s\n", summary.TotalWorkDisplay)
	fmt.Fprintf(b, "- **Active rate**: %.1f%%\n", activeRate)
	fmt.Fprintf(b, "- **Away periods**: %d (total %.1fm)\n", summary.LongIdlePeriods, summary.TotalIdleMinutes)
}

// clockOf extracts "HH:MM" from a "2006-01-02T15:04:05" timestamp string
func clockOf(ts string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ts
}

// hourOfClock parses the hour of an "HH:MM" string
func hourOfClock(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	return hour
}

// periodHasIdle reports whether any long idle interval touches the quarter
func periodHasIdle(periods []classify.IdlePeriod, startHour, endHour int) bool {
	for _, p := range periods {
		if p.Start.Hour() < endHour && p.End.Hour() >= startHour {
			return true
		}
	}
	return false
}
