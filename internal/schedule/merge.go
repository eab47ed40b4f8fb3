package schedule

import (
	"slices"
	"strings"
	"time"
)

// Color is a hex color string such as "#82AAFF".
type Color string

// Palette is the fixed ordered set of merged-range colors.
var Palette = [10]Color{
	"#FFCB6B", // yellow
	"#82AAFF", // blue
	"#C3E88D", // green
	"#F07178", // red
	"#FF5370", // pink
	"#89DDFF", // cyan
	"#F78C6C", // orange
	"#A3A3A3", // gray
	"#C792EA", // purple
	"#E0E0E0", // light-gray
}

// MergeDay collapses adjacent intervals into maximal contiguous ranges.
// Intervals are sorted by start first; a range absorbs the next interval when
// its end equals the next start. The input slice is not modified.
func MergeDay(blocks []Interval) []Interval {
	if len(blocks) == 0 {
		return nil
	}

	sorted := slices.Clone(blocks)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		last := len(merged) - 1
		if last >= 0 && merged[last].End.Equal(iv.Start) {
			merged[last].End = iv.End
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// ColorForMergedIndex returns the palette color for the i-th merged range.
func ColorForMergedIndex(i int) Color {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// MergedColors returns one color per merged range, by position.
func MergedColors(merged []Interval) []Color {
	colors := make([]Color, len(merged))
	for i := range merged {
		colors[i] = ColorForMergedIndex(i)
	}
	return colors
}

// ColorAtInstant returns the color of the first merged range containing t.
// Containment is closed on both ends so the boundary slot is highlighted.
func ColorAtInstant(t time.Time, merged []Interval) (Color, bool) {
	for i, iv := range merged {
		if iv.ContainsInclusive(t) {
			return ColorForMergedIndex(i), true
		}
	}
	return "", false
}

const instantLayout = time.RFC3339

// MergeCache memoizes MergeDay per day, keyed by the day's block set.
type MergeCache struct {
	entries map[DayKey]mergeEntry
}

type mergeEntry struct {
	fingerprint string
	merged      []Interval
}

// NewMergeCache creates an empty cache.
func NewMergeCache() *MergeCache {
	return &MergeCache{entries: make(map[DayKey]mergeEntry)}
}

// Merged returns the merged ranges of day, recomputing when its blocks changed.
func (c *MergeCache) Merged(selected SelectedTimes, day DayKey) []Interval {
	blocks := selected[day]
	fp := fingerprint(blocks)
	if entry, ok := c.entries[day]; ok && entry.fingerprint == fp {
		return entry.merged
	}
	merged := MergeDay(blocks.Intervals())
	c.entries[day] = mergeEntry{fingerprint: fp, merged: merged}
	return merged
}

// Invalidate drops every cached entry.
func (c *MergeCache) Invalidate() {
	clear(c.entries)
}

func fingerprint(blocks DayBlocks) string {
	var b strings.Builder
	for _, iv := range blocks.Intervals() {
		b.WriteString(iv.Start.Format(instantLayout))
		b.WriteByte('/')
		b.WriteString(iv.End.Format(instantLayout))
		b.WriteByte(';')
	}
	return b.String()
}
