package history

import (
	"testing"

	"github.com/hirose30/screen-logger/internal/analyze"
	"github.com/hirose30/screen-logger/internal/session"
)

func sampleResult(date string, workMinutes int) *analyze.Result {
	return &analyze.Result{
		Date: date,
		BasicStats: &analyze.BasicStats{
			FirstTimestamp: date + "T09:00:00",
			LastTimestamp:  date + "T17:00:00",
			CaptureCount:   100,
		},
		ActivitySummary: &analyze.ActivitySummary{
			TotalCaptures:    100,
			ActiveCaptures:   70,
			IdleCaptures:     30,
			ActiveRate:       70.0,
			TotalWorkMinutes: workMinutes,
			TotalWorkDisplay: session.FormatDuration(workMinutes),
		},
		AppUsage: []analyze.AppUsage{
			{App: "ghostty", ActiveCount: 50},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Save(sampleResult("2025-06-01", 240)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	day, err := store.Get("2025-06-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if day == nil {
		t.Fatalf("day not found after save")
	}
	if day.CaptureCount != 100 || day.TotalWorkMinutes != 240 {
		t.Errorf("day = %+v", day)
	}
	if day.TopApp != "ghostty" {
		t.Errorf("TopApp = %q", day.TopApp)
	}
	if day.Summary == nil || day.Summary.Date != "2025-06-01" {
		t.Errorf("Summary = %+v", day.Summary)
	}
}

func TestGetMissingDay(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	day, err := store.Get("2025-01-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if day != nil {
		t.Errorf("got %+v, want nil for unsaved day", day)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Save(sampleResult("2025-06-01", 100)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(sampleResult("2025-06-01", 200)); err != nil {
		t.Fatal(err)
	}

	day, err := store.Get("2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if day.TotalWorkMinutes != 200 {
		t.Errorf("TotalWorkMinutes = %d, want latest save to win", day.TotalWorkMinutes)
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Errorf("got %d rows, want 1 after overwrite", len(recent))
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, date := range []string{"2025-06-01", "2025-06-03", "2025-06-02"} {
		if err := store.Save(sampleResult(date, 60)); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d rows, want 2", len(recent))
	}
	if recent[0].Date != "2025-06-03" || recent[1].Date != "2025-06-02" {
		t.Errorf("order = %s, %s", recent[0].Date, recent[1].Date)
	}
}

func TestSaveRejectsNoData(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Save(&analyze.Result{Date: "2025-06-01", Error: "no observations logged for this day"}); err == nil {
		t.Errorf("expected error saving a no-data result")
	}
}
