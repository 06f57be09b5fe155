package session

import (
	"fmt"
	"strconv"
	"strings"
)

// HourlyWork is one of 24 fixed wall-clock-hour buckets
type HourlyWork struct {
	Hour        string `json:"hour"` // "HH-HH"
	WorkMinutes int    `json:"work_minutes"`
	MainApp     string `json:"main_app"`
}

// hourBucket accumulates minutes per app for one hour. Apps keep encounter
// order so the main-app tie-break is first-seen, not map-iteration order.
type hourBucket struct {
	minutes  int
	appMins  map[string]int
	appOrder []string
}

func (b *hourBucket) credit(app string, mins int) {
	b.minutes += mins
	if b.appMins == nil {
		b.appMins = make(map[string]int)
	}
	if _, ok := b.appMins[app]; !ok {
		b.appOrder = append(b.appOrder, app)
	}
	b.appMins[app] += mins
}

func (b *hourBucket) mainApp() string {
	best := "-"
	bestMins := 0
	for _, app := range b.appOrder {
		if b.appMins[app] > bestMins {
			best = app
			bestMins = b.appMins[app]
		}
	}
	return best
}

// HourlyWorkMinutes apportions each session's duration across the hours it
// overlaps: a session inside one hour credits its whole duration there;
// a spanning session credits 60−start_minute to the start hour, 60 to each
// fully covered hour, and the end-minute remainder to the end hour. All 24
// buckets are returned, including empty ones.
func HourlyWorkMinutes(sessions []Session) []HourlyWork {
	var buckets [24]hourBucket

	for _, s := range sessions {
		startHour, startMin := parseClock(s.Start)
		endHour, endMin := parseClock(s.End)

		if startHour == endHour {
			buckets[startHour].credit(s.App, s.DurationMinutes)
			continue
		}

		buckets[startHour].credit(s.App, 60-startMin)
		for h := startHour + 1; h < endHour; h++ {
			buckets[h].credit(s.App, 60)
		}
		if endMin > 0 {
			buckets[endHour].credit(s.App, endMin)
		}
	}

	results := make([]HourlyWork, 24)
	for hour := range buckets {
		results[hour] = HourlyWork{
			Hour:        fmt.Sprintf("%02d-%02d", hour, (hour+1)%24),
			WorkMinutes: buckets[hour].minutes,
			MainApp:     buckets[hour].mainApp(),
		}
	}
	return results
}

// parseClock splits an "HH:MM" string; malformed input yields 0,0
func parseClock(clock string) (hour, min int) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	min, _ = strconv.Atoi(parts[1])
	return hour, min
}
