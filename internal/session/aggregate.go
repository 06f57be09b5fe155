package session

import (
	"fmt"
	"sort"
	"strings"
)

// AggregatedWork merges all sessions sharing (app, description)
type AggregatedWork struct {
	App          string   `json:"app"`
	Description  string   `json:"description"`
	TotalMinutes int      `json:"total_minutes"`
	TotalDisplay string   `json:"total_display"`
	TimeRanges   []string `json:"time_ranges"`
	TimeSummary  string   `json:"time_summary"`
	Project      string   `json:"project,omitempty"`
}

// Aggregate merges sessions by (app, description), sums durations, and
// orders the result by total minutes descending. Ties keep first-encounter
// order.
func Aggregate(sessions []Session) []AggregatedWork {
	type aggKey struct{ app, description string }

	byKey := make(map[aggKey]*AggregatedWork)
	var order []aggKey

	for _, s := range sessions {
		k := aggKey{s.App, s.Description}
		item, ok := byKey[k]
		if !ok {
			item = &AggregatedWork{
				App:         s.App,
				Description: s.Description,
				Project:     s.Project,
			}
			byKey[k] = item
			order = append(order, k)
		}
		item.TotalMinutes += s.DurationMinutes
		item.TimeRanges = append(item.TimeRanges, s.Start+"-"+s.End)
	}

	result := make([]AggregatedWork, 0, len(order))
	for _, k := range order {
		item := byKey[k]
		item.TotalDisplay = FormatDuration(item.TotalMinutes)
		if len(item.TimeRanges) > 3 {
			item.TimeSummary = fmt.Sprintf("%s +%d more", item.TimeRanges[0], len(item.TimeRanges)-1)
		} else {
			item.TimeSummary = strings.Join(item.TimeRanges, ", ")
		}
		result = append(result, *item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalMinutes > result[j].TotalMinutes
	})
	return result
}
