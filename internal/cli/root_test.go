package cli

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		date, err := resolveDate(nil)
		if err != nil {
			t.Fatalf("resolveDate: %v", err)
		}
		if date != time.Now().Format("2006-01-02") {
			t.Errorf("date = %q", date)
		}
	})

	t.Run("accepts valid date", func(t *testing.T) {
		date, err := resolveDate([]string{"2025-06-01"})
		if err != nil {
			t.Fatalf("resolveDate: %v", err)
		}
		if date != "2025-06-01" {
			t.Errorf("date = %q", date)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, bad := range []string{"yesterday", "2025/06/01", "06-01-2025", "2025-6-1"} {
			if _, err := resolveDate([]string{bad}); err == nil {
				t.Errorf("resolveDate(%q) should fail", bad)
			}
		}
	})
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{
		"version": false, "capture": false, "analyze": false,
		"report": false, "history": false, "status": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
