package analyze

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hirose30/screen-logger/internal/session"
)

// Summary is the compact projection of a Result meant for downstream
// consumers (for example a daily-review prompt): top work items, the busiest
// sessions per quarter of the day, and the detected projects/keywords.
type Summary struct {
	Date              string                     `json:"date"`
	Error             string                     `json:"error,omitempty"`
	BasicStats        *BasicStats                `json:"basic_stats,omitempty"`
	ActivitySummary   *ActivitySummary           `json:"activity_summary,omitempty"`
	HourlyWorkMinutes []session.HourlyWork       `json:"hourly_work_minutes,omitempty"`
	TopWorkItems      []WorkItem                 `json:"top_work_items,omitempty"`
	SessionsByPeriod  map[string][]PeriodSession `json:"sessions_by_period,omitempty"`
	TopApps           []AppBrief                 `json:"top_apps,omitempty"`
	IdlePeriods       []IdleBrief                `json:"idle_periods,omitempty"`
	DetectedProjects  []string                   `json:"detected_projects,omitempty"`
	DetectedKeywords  []string                   `json:"detected_keywords,omitempty"`
}

// WorkItem is one aggregated work entry in compact form
type WorkItem struct {
	App          string `json:"app"`
	Description  string `json:"description"`
	TotalMinutes int    `json:"total_minutes"`
	TotalDisplay string `json:"total_display"`
	TimeSummary  string `json:"time_summary"`
	Project      string `json:"project,omitempty"`
}

// PeriodSession is one session in compact form, grouped by quarter-day
type PeriodSession struct {
	App             string `json:"app"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Project         string `json:"project,omitempty"`
}

// AppBrief is one app-usage row in compact form
type AppBrief struct {
	App              string  `json:"app"`
	ActiveCount      int     `json:"active_count"`
	ActivePercentage float64 `json:"active_percentage"`
}

// IdleBrief is one idle interval in compact form
type IdleBrief struct {
	Start           string  `json:"start"` // "HH:MM"
	End             string  `json:"end"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// quarterPeriods are the four fixed day quarters, in display order
var quarterPeriods = []string{"00-06", "06-12", "12-18", "18-24"}

const (
	maxTopWorkItems      = 10
	maxSessionsPerPeriod = 5
	maxTopApps           = 5
	maxSummaryIdle       = 5
	maxDetectedProjects  = 10
	maxDetectedKeywords  = 15
)

// Summarize compacts a full Result. A no-data Result stays a no-data
// Summary.
func Summarize(r *Result) *Summary {
	if r.NoData() {
		return &Summary{Date: r.Date, Error: r.Error}
	}

	s := &Summary{
		Date:              r.Date,
		BasicStats:        r.BasicStats,
		ActivitySummary:   r.ActivitySummary,
		HourlyWorkMinutes: r.HourlyWorkMinutes,
		SessionsByPeriod:  make(map[string][]PeriodSession),
	}

	for i, w := range r.AggregatedWork {
		if i >= maxTopWorkItems {
			break
		}
		s.TopWorkItems = append(s.TopWorkItems, WorkItem{
			App:          w.App,
			Description:  w.Description,
			TotalMinutes: w.TotalMinutes,
			TotalDisplay: w.TotalDisplay,
			TimeSummary:  w.TimeSummary,
			Project:      w.Project,
		})
	}

	for _, period := range quarterPeriods {
		s.SessionsByPeriod[period] = nil
	}
	for _, sess := range r.WorkSessions {
		period := quarterPeriod(sess.Start)
		s.SessionsByPeriod[period] = append(s.SessionsByPeriod[period], PeriodSession{
			App:             sess.App,
			Description:     sess.Description,
			DurationMinutes: sess.DurationMinutes,
			Project:         sess.Project,
		})
	}
	for period, sessions := range s.SessionsByPeriod {
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].DurationMinutes > sessions[j].DurationMinutes
		})
		if len(sessions) > maxSessionsPerPeriod {
			sessions = sessions[:maxSessionsPerPeriod]
		}
		s.SessionsByPeriod[period] = sessions
	}

	for i, a := range r.AppUsage {
		if i >= maxTopApps {
			break
		}
		s.TopApps = append(s.TopApps, AppBrief{
			App:              a.App,
			ActiveCount:      a.ActiveCount,
			ActivePercentage: a.ActivePercentage,
		})
	}

	for i, p := range r.IdlePeriods {
		if i >= maxSummaryIdle {
			break
		}
		s.IdlePeriods = append(s.IdlePeriods, IdleBrief{
			Start:           p.Start.Format("15:04"),
			End:             p.End.Format("15:04"),
			DurationMinutes: p.DurationMinutes,
		})
	}

	s.DetectedProjects, s.DetectedKeywords = detectedArtifacts(r.WorkSessions)
	return s
}

// quarterPeriod maps an "HH:MM" start to its day quarter
func quarterPeriod(start string) string {
	hour := 0
	if parts := strings.SplitN(start, ":", 2); len(parts) == 2 {
		hour, _ = strconv.Atoi(parts[0])
	}
	switch {
	case hour < 6:
		return "00-06"
	case hour < 12:
		return "06-12"
	case hour < 18:
		return "12-18"
	default:
		return "18-24"
	}
}

// detectedArtifacts collects projects and keywords across sessions,
// first-seen order, capped.
func detectedArtifacts(sessions []session.Session) (projects, keywords []string) {
	addUnique := func(list []string, item string, max int) []string {
		if item == "" || len(list) >= max {
			return list
		}
		for _, existing := range list {
			if existing == item {
				return list
			}
		}
		return append(list, item)
	}

	for _, sess := range sessions {
		projects = addUnique(projects, sess.Project, maxDetectedProjects)
		if sess.ContentDetails == nil {
			continue
		}
		for i, kw := range sess.ContentDetails.Keywords {
			if i >= 3 {
				break
			}
			keywords = addUnique(keywords, kw, maxDetectedKeywords)
		}
		for i, repo := range sess.ContentDetails.Repos {
			if i >= 2 {
				break
			}
			projects = addUnique(projects, repo, maxDetectedProjects)
		}
	}
	return projects, keywords
}
