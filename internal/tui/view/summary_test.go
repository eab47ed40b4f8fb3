package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekpick/internal/schedule"
	"github.com/javiermolinar/weekpick/internal/summary"
)

func sampleSummary(t *testing.T) []summary.DaySummary {
	t.Helper()
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	s := schedule.SelectedTimes{}
	for _, h := range []int{9, 14} {
		var err error
		s, err = s.Commit("Mon 1/6", schedule.Interval{
			Start: day.Add(time.Duration(h) * time.Hour),
			End:   day.Add(time.Duration(h)*time.Hour + 45*time.Minute),
		})
		if err != nil {
			t.Fatalf("Commit failed: %v", err)
		}
	}
	return summary.Format(s, summary.Options{})
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(SummaryPanelState{
		Width: 40,
		Title: "Availability",
		Days:  sampleSummary(t),
	})

	want := []string{
		"Availability",
		"",
		"Mon 1/6",
		"■ 9:00 AM - 9:45 AM EST",
		"■ 2:00 PM - 2:45 PM EST",
		"",
		"1h 30m across 1 day",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if got := ansi.Strip(lines[i]); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestSummaryLines_Empty(t *testing.T) {
	lines := SummaryLines(SummaryPanelState{Width: 40, Title: "Availability", EmptyText: "Nothing yet"})
	if got := ansi.Strip(lines[len(lines)-1]); got != "Nothing yet" {
		t.Errorf("last line = %q, want empty text", got)
	}
}

func TestRenderSummaryPanel_ClipsToHeight(t *testing.T) {
	out := RenderSummaryPanel(SummaryPanelState{
		Width:  30,
		Height: 4,
		Title:  "Availability",
		Days:   sampleSummary(t),
	})
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[3], "…") {
		t.Errorf("last line = %q, want an ellipsis", lines[3])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}
