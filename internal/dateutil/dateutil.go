// Package dateutil provides date parsing and week navigation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidClockFormat = errors.New("time must be in HH:MM format")
)

// DaysShown is the number of weekday columns in a displayed week.
const DaysShown = 5

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date string in YYYY-MM-DD format in loc.
// If the string is empty, returns today's date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if s == "" {
		return TruncateToDay(time.Now().In(loc)), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseClock parses "HH:MM" and returns the hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 {
		return 0, 0, fmt.Errorf("%w, got %q", ErrInvalidClockFormat, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w, got %q", ErrInvalidClockFormat, s)
	}
	return t.Hour(), t.Minute(), nil
}

// At returns date at the given wall-clock hour and minute.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays returns Monday through Friday of the week containing ref.
// Weeks start on Sunday, so a Sunday reference yields the following weekdays.
func WeekDays(ref time.Time) [DaysShown]time.Time {
	sunday := TruncateToDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	var days [DaysShown]time.Time
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i+1)
	}
	return days
}

// ShiftWeek moves ref by n weeks (negative n moves backwards).
func ShiftWeek(ref time.Time, n int) time.Time {
	return ref.AddDate(0, 0, 7*n)
}

// SameWeek reports whether a and b fall in the same displayed week.
func SameWeek(a, b time.Time) bool {
	return WeekDays(a)[0].Equal(WeekDays(b)[0])
}

// WeekLabel renders the displayed range, e.g. "Jan 6 - Jan 10, 2025".
func WeekLabel(days [DaysShown]time.Time) string {
	first, last := days[0], days[DaysShown-1]
	return fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
}

// ParseWeekRef parses a week reference that can be:
//   - Empty string or "today": relativeTo
//   - "next-week" / "last-week": relativeTo ± 7 days
//   - Weekday names: "monday" through "sunday" (next occurrence)
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive.
func ParseWeekRef(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "next-week":
		return ShiftWeek(today, 1), nil
	case "last-week":
		return ShiftWeek(today, -1), nil
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	current := today.Weekday()
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
