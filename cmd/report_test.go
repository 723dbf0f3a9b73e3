package cmd

import (
	"strings"
	"testing"
)

func TestWindowLabel(t *testing.T) {
	for window, want := range map[string]string{
		"short":  "last 4 weeks",
		"medium": "last 6 months",
		"long":   "all time",
	} {
		got, err := windowLabel(window)
		if err != nil {
			t.Fatalf("windowLabel(%q): %v", window, err)
		}
		if got != want {
			t.Errorf("windowLabel(%q) = %q, want %q", window, got, want)
		}
	}

	if _, err := windowLabel("fortnight"); err == nil {
		t.Error("Expected error for unknown window, got nil")
	}
}

func TestRenderTableIncludesRowsAndSummary(t *testing.T) {
	out := renderTable([][]string{
		{"#", "Artist"},
		{"1", "Artist X"},
	}, "Top artists, all time.")

	if !strings.Contains(out, "Artist X") {
		t.Errorf("output missing data row:\n%s", out)
	}
	if !strings.Contains(out, "Top artists, all time.") {
		t.Errorf("output missing summary line:\n%s", out)
	}
}
