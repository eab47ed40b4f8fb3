package schedule

import (
	"testing"
	"time"
)

// monday is the date used by most tests: "Mon 1/6".
var monday = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// at returns the instant "HH:MM" on date.
func at(t *testing.T, date time.Time, hhmm string) time.Time {
	t.Helper()
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("bad clock %q: %v", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

// span returns the interval [start, end) on date.
func span(t *testing.T, date time.Time, start, end string) Interval {
	t.Helper()
	return Interval{Start: at(t, date, start), End: at(t, date, end)}
}

// mustCommit commits iv or fails the test.
func mustCommit(t *testing.T, s SelectedTimes, day DayKey, iv Interval) SelectedTimes {
	t.Helper()
	next, err := s.Commit(day, iv)
	if err != nil {
		t.Fatalf("Commit(%s, %s) failed: %v", day, iv, err)
	}
	return next
}

func intervalsEqual(a, b []Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
