// Package summary turns committed selections into the human-readable listing
// shown in the UI and copied to the clipboard.
package summary

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// DefaultZoneLabel is appended to every formatted range.
const DefaultZoneLabel = "EST"

// DaySummary holds the merged ranges of one day.
type DaySummary struct {
	Day    schedule.DayKey
	Merged []schedule.Interval
	Colors []schedule.Color
	Ranges []string // "9:00 AM - 10:00 AM EST"
}

// Minutes returns the total selected minutes of the day.
func (d DaySummary) Minutes() int {
	var total time.Duration
	for _, iv := range d.Merged {
		total += iv.Duration()
	}
	return int(total.Minutes())
}

// Options configures formatting.
type Options struct {
	ZoneLabel string
	Cache     *schedule.MergeCache // optional
}

// Format merges every day and returns the non-empty days ordered by
// (month, day) parsed from the day key.
func Format(selected schedule.SelectedTimes, opts Options) []DaySummary {
	zone := opts.ZoneLabel
	if zone == "" {
		zone = DefaultZoneLabel
	}

	days := make([]schedule.DayKey, 0, len(selected))
	for day := range selected {
		days = append(days, day)
	}
	slices.SortFunc(days, schedule.CompareDayKeys)

	result := make([]DaySummary, 0, len(days))
	for _, day := range days {
		var merged []schedule.Interval
		if opts.Cache != nil {
			merged = opts.Cache.Merged(selected, day)
		} else {
			merged = schedule.MergeDay(selected.Blocks(day))
		}
		if len(merged) == 0 {
			continue
		}

		ranges := make([]string, len(merged))
		for i, iv := range merged {
			ranges[i] = FormatRange(iv, zone)
		}
		result = append(result, DaySummary{
			Day:    day,
			Merged: merged,
			Colors: schedule.MergedColors(merged),
			Ranges: ranges,
		})
	}
	return result
}

// FormatRange renders a merged range as "<start> - <end> <zone>".
func FormatRange(iv schedule.Interval, zone string) string {
	return iv.String() + " " + zone
}

// ClipboardText renders summaries as day groups separated by blank lines.
func ClipboardText(summaries []DaySummary) string {
	groups := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines := make([]string, 0, len(s.Ranges)+1)
		lines = append(lines, string(s.Day))
		lines = append(lines, s.Ranges...)
		groups = append(groups, strings.Join(lines, "\n"))
	}
	return strings.Join(groups, "\n\n")
}

// Totals holds aggregated selection time.
type Totals struct {
	Days    int
	Ranges  int
	Minutes int
}

// Total aggregates minutes and range counts across summaries.
func Total(summaries []DaySummary) Totals {
	var t Totals
	for _, s := range summaries {
		t.Days++
		t.Ranges += len(s.Merged)
		t.Minutes += s.Minutes()
	}
	return t
}

// FormatMinutes renders a duration in minutes as "2h 15m".
func FormatMinutes(mins int) string {
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
