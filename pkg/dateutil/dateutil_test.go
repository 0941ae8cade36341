package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseOrDefault(t *testing.T) {
	now := date(2024, time.July, 15)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"explicit date", "2024-07-31", date(2024, time.July, 31)},
		{"empty defaults to month end", "", date(2024, time.July, 31)},
		{"garbage defaults to month end", "31.07.2024", date(2024, time.July, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseOrDefault(tt.input, now)
			if !result.Equal(tt.expected) {
				t.Errorf("ParseOrDefault(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseOrDefaultYearEnd(t *testing.T) {
	result := ParseOrDefault("", date(2024, time.December, 5))
	if !result.Equal(date(2024, time.December, 31)) {
		t.Errorf("December default = %v, expected 2024-12-31", result)
	}
}

func TestDueDate(t *testing.T) {
	// Friday + 1 business day skips the weekend
	due := DueDate(date(2024, time.July, 5))
	if due.Weekday() == time.Saturday || due.Weekday() == time.Sunday {
		t.Errorf("due date fell on a weekend: %v", due)
	}
	if !due.After(date(2024, time.July, 5)) {
		t.Errorf("due date %v not after bill date", due)
	}

	// Nine business days from end of July 2024 (no German public holidays
	// in the way) lands on Tuesday, August 13
	due = DueDate(date(2024, time.July, 31))
	if !due.Equal(date(2024, time.August, 13)) {
		t.Errorf("DueDate(2024-07-31) = %v, expected 2024-08-13", due)
	}
}

func TestDueDateSkipsHolidays(t *testing.T) {
	// Dec 25/26 are public holidays: nine business days from Dec 20, 2024
	// (Fri) must land past them, in January
	due := DueDate(date(2024, time.December, 20))
	if due.Year() != 2025 {
		t.Errorf("DueDate(2024-12-20) = %v, expected a January 2025 date", due)
	}
}

func TestPeriodLabel(t *testing.T) {
	if label := PeriodLabel(date(2024, time.July, 31)); label != "2024-07" {
		t.Errorf("PeriodLabel = %q, expected 2024-07", label)
	}
	if label := PeriodLabel(date(2025, time.January, 2)); label != "2025-01" {
		t.Errorf("PeriodLabel = %q, expected 2025-01", label)
	}
}
