package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestGetImplicitDateRange_year(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020", "2021", "2006")
}

func TestGetImplicitDateRange_month(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01", "2020-02", "2006-01")
}

func TestGetImplicitDateRange_day(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01-01", "2020-01-02", "2006-01-02")
}

func TestGetImplicitDateRange_invalid(t *testing.T) {
	tooMany := "2020-01-0123"
	_, _, err := getImplicitDateRange(tooMany)
	if err == nil {
		t.Fatalf("Expected error parsing %q", tooMany)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}

	letters := "not_real"
	_, _, err = getImplicitDateRange(letters)
	if err == nil {
		t.Fatalf("Expected error parsing %q", letters)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}
}

func TestGetExplicitDateRange(t *testing.T) {
	start, end, err := getExplicitDateRange("2020-01", "2020-06")
	if err != nil {
		t.Fatalf("Parsing explicit range: %v", err)
	}
	if got := start.Format("2006-01"); got != "2020-01" {
		t.Errorf("start = %q, want 2020-01", got)
	}
	if got := end.Format("2006-01"); got != "2020-06" {
		t.Errorf("end = %q, want 2020-06", got)
	}
}

func doTestGetImplicitDateRange(t *testing.T, startString string, endString string, format string) {
	start, end, err := getImplicitDateRange(startString)
	if err != nil {
		t.Fatalf("Parsing %q: %v", startString, err)
	}

	expectedStart, err := time.Parse(format, startString)
	if err != nil {
		t.Fatalf("Parsing expected start: %v", err)
	}
	if !start.Equal(expectedStart) {
		t.Errorf("start = %v, want %v", start, expectedStart)
	}

	expectedEnd, err := time.Parse(format, endString)
	if err != nil {
		t.Fatalf("Parsing expected end: %v", err)
	}
	if !end.Equal(expectedEnd) {
		t.Errorf("end = %v, want %v", end, expectedEnd)
	}
}
