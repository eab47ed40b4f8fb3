// Package schedule implements the availability selection engine: the slot grid,
// committed blocks, overlap checks, range merging, and the selection gesture.
package schedule

import (
	"fmt"
	"time"
)

const (
	// SlotMinutes is the duration of one grid slot.
	SlotMinutes = 15
	// SlotCount is the number of slots per day, 08:00 through 20:00 inclusive.
	SlotCount = 49
	// GridStartHour is the wall-clock hour of slot 0.
	GridStartHour = 8
	// SlotsPerHour is the number of slots in one hour.
	SlotsPerHour = 60 / SlotMinutes
)

// SlotToInstant returns the wall-clock instant of a slot on the given date.
// The instant is built in date's location. slot must be in [0, SlotCount).
func SlotToInstant(date time.Time, slot int) time.Time {
	if slot < 0 || slot >= SlotCount {
		panic(fmt.Sprintf("schedule: slot %d out of range [0,%d)", slot, SlotCount))
	}
	hour := GridStartHour + slot/SlotsPerHour
	minute := SlotMinutes * (slot % SlotsPerHour)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// InstantToSlot returns the slot index of t.
// Returns false if t does not fall exactly on a grid boundary.
func InstantToSlot(t time.Time) (int, bool) {
	if t.Second() != 0 || t.Nanosecond() != 0 || t.Minute()%SlotMinutes != 0 {
		return 0, false
	}
	slot := (t.Hour()-GridStartHour)*SlotsPerHour + t.Minute()/SlotMinutes
	if slot < 0 || slot >= SlotCount {
		return 0, false
	}
	return slot, true
}

// IsFullHour reports whether the slot starts on the hour.
func IsFullHour(slot int) bool {
	return slot%SlotsPerHour == 0
}

// DayInstants returns the instants of every slot on date.
func DayInstants(date time.Time) []time.Time {
	result := make([]time.Time, SlotCount)
	for i := range result {
		result[i] = SlotToInstant(date, i)
	}
	return result
}

// FormatClock formats t on a 12-hour clock, e.g. "9:00 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
