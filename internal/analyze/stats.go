package analyze

import (
	"fmt"
	"sort"

	"github.com/hirose30/screen-logger/internal/classify"
)

// BasicStats covers the raw span of the day's log
type BasicStats struct {
	FirstTimestamp  string `json:"first_timestamp"`
	LastTimestamp   string `json:"last_timestamp"`
	DurationMinutes int    `json:"duration_minutes"`
	CaptureCount    int    `json:"capture_count"`
}

func basicStats(entries []classify.Entry) *BasicStats {
	first := entries[0].Timestamp
	last := entries[0].Timestamp
	for _, e := range entries[1:] {
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}
	return &BasicStats{
		FirstTimestamp:  first.Format("2006-01-02T15:04:05"),
		LastTimestamp:   last.Format("2006-01-02T15:04:05"),
		DurationMinutes: int(last.Sub(first).Minutes()),
		CaptureCount:    len(entries),
	}
}

// AppUsage summarizes how often one app was in the foreground
type AppUsage struct {
	App              string  `json:"app"`
	TotalCount       int     `json:"total_count"`
	ActiveCount      int     `json:"active_count"`
	TotalPercentage  float64 `json:"total_percentage"`
	ActivePercentage float64 `json:"active_percentage"`
	Frequency        string  `json:"frequency"`
}

// frequencyTier labels an app by its share of active captures
func frequencyTier(activePercentage float64) string {
	switch {
	case activePercentage >= 30:
		return "heavy"
	case activePercentage >= 15:
		return "frequent"
	case activePercentage >= 5:
		return "moderate"
	default:
		return "light"
	}
}

func appUsage(entries []classify.Entry) []AppUsage {
	totals := make(map[string]int)
	actives := make(map[string]int)
	var order []string

	for _, e := range entries {
		if _, seen := totals[e.AppName]; !seen {
			order = append(order, e.AppName)
		}
		totals[e.AppName]++
		if e.IsActive {
			actives[e.AppName]++
		}
	}

	totalAll := len(entries)
	totalActive := 0
	for _, n := range actives {
		totalActive += n
	}

	results := make([]AppUsage, 0, len(order))
	for _, app := range order {
		count := totals[app]
		activeCount := actives[app]

		percentage := 0.0
		if totalAll > 0 {
			percentage = float64(count) / float64(totalAll) * 100
		}
		activePercentage := 0.0
		if totalActive > 0 {
			activePercentage = float64(activeCount) / float64(totalActive) * 100
		}

		results = append(results, AppUsage{
			App:              app,
			TotalCount:       count,
			ActiveCount:      activeCount,
			TotalPercentage:  round1(percentage),
			ActivePercentage: round1(activePercentage),
			Frequency:        frequencyTier(activePercentage),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ActiveCount > results[j].ActiveCount
	})
	return results
}

// HourActivity is the raw capture activity for one wall-clock hour
type HourActivity struct {
	Hour           string  `json:"hour"` // "HH-HH"
	TotalCaptures  int     `json:"total_captures"`
	ActiveCaptures int     `json:"active_captures"`
	IdleCaptures   int     `json:"idle_captures"`
	ActiveRate     float64 `json:"active_rate"`
	MainApp        string  `json:"main_app"`
	Status         string  `json:"status"` // "active" or "idle"
}

// activeHourRate: an hour with at least this active percentage counts as an
// active hour; below it the hour was effectively abandoned.
const activeHourRate = 10

type hourCounts struct {
	total      int
	active     int
	idle       int
	apps       map[string]int
	activeApps map[string]int
	appOrder   []string
}

func hourlyActivity(entries []classify.Entry) []HourActivity {
	byHour := make(map[int]*hourCounts)

	for _, e := range entries {
		hour := e.Timestamp.Hour()
		hc := byHour[hour]
		if hc == nil {
			hc = &hourCounts{apps: make(map[string]int), activeApps: make(map[string]int)}
			byHour[hour] = hc
		}
		if _, seen := hc.apps[e.AppName]; !seen {
			hc.appOrder = append(hc.appOrder, e.AppName)
		}
		hc.total++
		hc.apps[e.AppName]++
		if e.IsActive {
			hc.active++
			hc.activeApps[e.AppName]++
		} else {
			hc.idle++
		}
	}

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	results := make([]HourActivity, 0, len(hours))
	for _, hour := range hours {
		hc := byHour[hour]
		rate := 0.0
		if hc.total > 0 {
			rate = float64(hc.active) / float64(hc.total) * 100
		}

		status := "idle"
		if rate >= activeHourRate {
			status = "active"
		}

		results = append(results, HourActivity{
			Hour:           fmt.Sprintf("%02d-%02d", hour, (hour+1)%24),
			TotalCaptures:  hc.total,
			ActiveCaptures: hc.active,
			IdleCaptures:   hc.idle,
			ActiveRate:     round1(rate),
			MainApp:        topApp(hc),
			Status:         status,
		})
	}
	return results
}

// topApp prefers the most-seen app among active captures, falling back to
// all captures; ties go to the first app encountered in the hour.
func topApp(hc *hourCounts) string {
	pick := func(counts map[string]int) string {
		best := ""
		bestCount := 0
		for _, app := range hc.appOrder {
			if counts[app] > bestCount {
				best = app
				bestCount = counts[app]
			}
		}
		return best
	}
	if app := pick(hc.activeApps); app != "" {
		return app
	}
	return pick(hc.apps)
}
