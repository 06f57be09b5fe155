package classify

import "time"

// IdleDurationThreshold: idle runs shorter than this are normal micro-pauses
// and are dropped, not "left the desk" intervals.
const IdleDurationThreshold = 300 * time.Second

// IdlePeriod is a maximal run of consecutive idle observations at or above
// the duration floor.
type IdlePeriod struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationSeconds int       `json:"duration_seconds"`
	DurationMinutes float64   `json:"duration_minutes"`
	App             string    `json:"app"`
}

// DetectIdlePeriods run-length-encodes idle labels into intervals. A run
// still open at the end of input is closed at the last observation's
// timestamp. Only intervals of at least IdleDurationThreshold are emitted.
func DetectIdlePeriods(entries []Entry) []IdlePeriod {
	var periods []IdlePeriod

	var (
		idleStart time.Time
		idleApp   string
		open      bool
	)

	emit := func(end time.Time) {
		duration := end.Sub(idleStart)
		if duration >= IdleDurationThreshold {
			secs := int(duration.Seconds())
			periods = append(periods, IdlePeriod{
				Start:           idleStart,
				End:             end,
				DurationSeconds: secs,
				DurationMinutes: roundTenth(duration.Minutes()),
				App:             idleApp,
			})
		}
	}

	for _, e := range entries {
		if e.IsIdle {
			if !open {
				idleStart = e.Timestamp
				idleApp = e.AppName
				open = true
			}
			continue
		}
		if open {
			emit(e.Timestamp)
			open = false
		}
	}

	// Idle run still open at end of day
	if open && len(entries) > 0 {
		emit(entries[len(entries)-1].Timestamp)
	}

	return periods
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
