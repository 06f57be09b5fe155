package session

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{1, "1m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{120, "2h"},
		{125, "2h5m"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
