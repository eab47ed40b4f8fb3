package schedule

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval from two instants in either order.
func NewInterval(a, b time.Time) Interval {
	if b.Before(a) {
		a, b = b, a
	}
	return Interval{Start: a, End: b}
}

// Valid reports whether the interval has a strictly positive length.
func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// ContainsInclusive reports whether t lies in [Start, End].
// Used for display highlighting only; overlap checks are half-open.
func (iv Interval) ContainsInclusive(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// Equal reports whether both bounds are the same instants.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// String renders the interval as "9:00 AM - 10:00 AM".
func (iv Interval) String() string {
	return FormatClock(iv.Start) + " - " + FormatClock(iv.End)
}

// Overlaps reports whether two half-open intervals intersect.
// Two ranges overlap if: start1 < end2 AND start2 < end1.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FindOverlap returns the first existing interval that overlaps candidate.
func FindOverlap(candidate Interval, existing []Interval) (Interval, bool) {
	for _, iv := range existing {
		if Overlaps(candidate, iv) {
			return iv, true
		}
	}
	return Interval{}, false
}

// IsOverlapping reports whether candidate overlaps any existing interval.
func IsOverlapping(candidate Interval, existing []Interval) bool {
	_, found := FindOverlap(candidate, existing)
	return found
}
