package schedule

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Selection errors. Both are invalid selections: they are discarded, never fatal.
var (
	ErrZeroLength = errors.New("selection has zero length")
	ErrOverlap    = errors.New("selection overlaps an existing block")
)

// ErrMalformedDayKey is returned when a day key does not carry a month/day pair.
var ErrMalformedDayKey = errors.New("malformed day key")

// IsInvalidSelection reports whether err rejects a candidate selection.
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrZeroLength) || errors.Is(err, ErrOverlap)
}

// DayKey identifies one displayed calendar day, e.g. "Mon 1/6".
type DayKey string

// NewDayKey returns the key for date.
func NewDayKey(date time.Time) DayKey {
	return DayKey(fmt.Sprintf("%s %d/%d", date.Format("Mon"), int(date.Month()), date.Day()))
}

// ParseDayKey extracts the month and day-of-month from a key.
func ParseDayKey(key DayKey) (month, day int, err error) {
	fields := strings.Fields(string(key))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDayKey, key)
	}
	monthStr, dayStr, ok := strings.Cut(fields[1], "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDayKey, key)
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDayKey, key)
	}
	day, err = strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedDayKey, key)
	}
	return month, day, nil
}

// CompareDayKeys orders keys by (month, day). Keys that do not parse sort
// after valid ones, by string.
func CompareDayKeys(a, b DayKey) int {
	am, ad, aerr := ParseDayKey(a)
	bm, bd, berr := ParseDayKey(b)
	switch {
	case aerr != nil && berr != nil:
		return strings.Compare(string(a), string(b))
	case aerr != nil:
		return 1
	case berr != nil:
		return -1
	}
	if c := cmp.Compare(am, bm); c != 0 {
		return c
	}
	return cmp.Compare(ad, bd)
}

// BlockKey returns the identity of a committed block within its day.
func BlockKey(iv Interval) string {
	return iv.Start.Format("15:04")
}

// Block is a committed interval tagged with its key.
type Block struct {
	Key string
	Interval
}

// DayBlocks holds the committed blocks of one day, keyed by BlockKey.
type DayBlocks map[string]Interval

// Intervals returns the day's intervals sorted by start.
func (d DayBlocks) Intervals() []Interval {
	result := make([]Interval, 0, len(d))
	for _, iv := range d {
		result = append(result, iv)
	}
	slices.SortFunc(result, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
	return result
}

// Blocks returns the day's blocks sorted by start.
func (d DayBlocks) Blocks() []Block {
	result := make([]Block, 0, len(d))
	for key, iv := range d {
		result = append(result, Block{Key: key, Interval: iv})
	}
	slices.SortFunc(result, func(a, b Block) int {
		return a.Start.Compare(b.Start)
	})
	return result
}

func (d DayBlocks) clone() DayBlocks {
	result := make(DayBlocks, len(d))
	for k, v := range d {
		result[k] = v
	}
	return result
}

// SelectedTimes maps each day to its committed blocks.
// It is treated as a value: methods never modify the receiver and return a
// new SelectedTimes instead.
type SelectedTimes map[DayKey]DayBlocks

// Clone returns a deep copy.
func (s SelectedTimes) Clone() SelectedTimes {
	result := make(SelectedTimes, len(s))
	for day, blocks := range s {
		result[day] = blocks.clone()
	}
	return result
}

// Blocks returns the committed intervals for day, sorted by start.
func (s SelectedTimes) Blocks(day DayKey) []Interval {
	return s[day].Intervals()
}

// Days returns the keys of days holding at least one block, in (month, day) order.
func (s SelectedTimes) Days() []DayKey {
	days := make([]DayKey, 0, len(s))
	for day, blocks := range s {
		if len(blocks) > 0 {
			days = append(days, day)
		}
	}
	slices.SortFunc(days, CompareDayKeys)
	return days
}

// Len returns the total number of committed blocks.
func (s SelectedTimes) Len() int {
	n := 0
	for _, blocks := range s {
		n += len(blocks)
	}
	return n
}

// Check validates a candidate interval against the day's committed blocks.
func (s SelectedTimes) Check(day DayKey, candidate Interval) error {
	if !candidate.Valid() {
		return ErrZeroLength
	}
	if conflict, found := FindOverlap(candidate, s.Blocks(day)); found {
		return fmt.Errorf("%w: %s conflicts with %s", ErrOverlap, candidate, conflict)
	}
	return nil
}

// Commit returns a copy of s with candidate added to day.
// Returns ErrZeroLength or ErrOverlap and leaves s untouched on rejection.
func (s SelectedTimes) Commit(day DayKey, candidate Interval) (SelectedTimes, error) {
	if err := s.Check(day, candidate); err != nil {
		return s, err
	}
	result := s.Clone()
	if result[day] == nil {
		result[day] = make(DayBlocks)
	}
	result[day][BlockKey(candidate)] = candidate
	return result, nil
}

// ResetDay returns a copy of s without any blocks for day.
func (s SelectedTimes) ResetDay(day DayKey) SelectedTimes {
	result := s.Clone()
	delete(result, day)
	return result
}

// Reset returns an empty SelectedTimes.
func (s SelectedTimes) Reset() SelectedTimes {
	return SelectedTimes{}
}
