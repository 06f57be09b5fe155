// Package analyze runs the full day pipeline: classification, idle
// detection, session segmentation, and the derived rollups, producing one
// Result that every report format is a pure projection of.
package analyze

import (
	"sort"
	"time"

	"github.com/hirose30/screen-logger/internal/classify"
	"github.com/hirose30/screen-logger/internal/daylog"
	"github.com/hirose30/screen-logger/internal/session"
	"github.com/hirose30/screen-logger/internal/workctx"
)

// Result is the complete structured analysis of one day
type Result struct {
	Date              string                   `json:"date"`
	Error             string                   `json:"error,omitempty"`
	BasicStats        *BasicStats              `json:"basic_stats,omitempty"`
	ActivitySummary   *ActivitySummary         `json:"activity_summary,omitempty"`
	WorkSessions      []session.Session        `json:"work_sessions,omitempty"`
	AggregatedWork    []session.AggregatedWork `json:"aggregated_work,omitempty"`
	HourlyWorkMinutes []session.HourlyWork     `json:"hourly_work_minutes,omitempty"`
	AppUsage          []AppUsage               `json:"app_usage,omitempty"`
	HourlyActivity    []HourActivity           `json:"hourly_activity,omitempty"`
	ActiveHoursOnly   []HourActivity           `json:"active_hours_only,omitempty"`
	IdlePeriods       []classify.IdlePeriod    `json:"idle_periods,omitempty"`
}

// NoData reports whether the day had no usable observations
func (r *Result) NoData() bool {
	return r.Error != ""
}

// ActivitySummary holds the day-level classification counts
type ActivitySummary struct {
	TotalCaptures    int     `json:"total_captures"`
	ActiveCaptures   int     `json:"active_captures"`
	IdleCaptures     int     `json:"idle_captures"`
	ActiveRate       float64 `json:"active_rate"`
	LongIdlePeriods  int     `json:"long_idle_periods"`
	TotalIdleMinutes float64 `json:"total_idle_minutes"`
	TotalWorkMinutes int     `json:"total_work_minutes"`
	TotalWorkDisplay string  `json:"total_work_display"`
}

// Run analyzes one day of observations. Empty input yields the distinguished
// no-data result; nothing here can fail on input content.
func Run(date string, observations []daylog.Observation, extractor *workctx.Extractor) *Result {
	sorted := sortObservations(observations)
	if len(sorted) == 0 {
		return &Result{
			Date:  date,
			Error: "no observations logged for this day",
		}
	}

	entries := classify.Classify(sorted)
	if len(entries) == 0 {
		return &Result{
			Date:  date,
			Error: "no observations logged for this day",
		}
	}

	idlePeriods := classify.DetectIdlePeriods(entries)
	sessions := session.NewSegmenter(extractor).Detect(entries)

	totalCaptures := len(entries)
	totalActive := 0
	for _, e := range entries {
		if e.IsActive {
			totalActive++
		}
	}

	activeRate := 0.0
	if totalCaptures > 0 {
		activeRate = float64(totalActive) / float64(totalCaptures) * 100
	}

	totalIdleSeconds := 0
	for _, p := range idlePeriods {
		totalIdleSeconds += p.DurationSeconds
	}

	totalWorkMinutes := 0
	for _, s := range sessions {
		totalWorkMinutes += s.DurationMinutes
	}

	hourly := hourlyActivity(entries)
	var activeHours []HourActivity
	for _, h := range hourly {
		if h.Status == "active" {
			activeHours = append(activeHours, h)
		}
	}

	return &Result{
		Date:       date,
		BasicStats: basicStats(entries),
		ActivitySummary: &ActivitySummary{
			TotalCaptures:    totalCaptures,
			ActiveCaptures:   totalActive,
			IdleCaptures:     totalCaptures - totalActive,
			ActiveRate:       round1(activeRate),
			LongIdlePeriods:  len(idlePeriods),
			TotalIdleMinutes: round1(float64(totalIdleSeconds) / 60),
			TotalWorkMinutes: totalWorkMinutes,
			TotalWorkDisplay: session.FormatDuration(totalWorkMinutes),
		},
		WorkSessions:      sessions,
		AggregatedWork:    session.Aggregate(sessions),
		HourlyWorkMinutes: session.HourlyWorkMinutes(sessions),
		AppUsage:          appUsage(entries),
		HourlyActivity:    hourly,
		ActiveHoursOnly:   activeHours,
		IdlePeriods:       idlePeriods,
	}
}

// sortObservations drops observations with unparseable timestamps and stably
// sorts the rest chronologically, so the downstream single-pass scans always
// see a monotone sequence even if the log was written out of order.
func sortObservations(observations []daylog.Observation) []daylog.Observation {
	type dated struct {
		obs daylog.Observation
		ts  time.Time
	}
	valid := make([]dated, 0, len(observations))
	for _, obs := range observations {
		ts, err := daylog.ParseTimestamp(obs.Timestamp)
		if err != nil {
			continue
		}
		valid = append(valid, dated{obs, ts})
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].ts.Before(valid[j].ts)
	})
	sorted := make([]daylog.Observation, len(valid))
	for i, v := range valid {
		sorted[i] = v.obs
	}
	return sorted
}

func round1(v float64) float64 {
	if v < 0 {
		return -round1(-v)
	}
	return float64(int(v*10+0.5)) / 10
}
