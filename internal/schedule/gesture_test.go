package schedule

import (
	"errors"
	"testing"
)

func TestGesture_AnchorThenCommit(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}

	s, outcome, err := g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	if err != nil || outcome != OutcomeAnchored {
		t.Fatalf("first Down = %v, %v; want anchored", outcome, err)
	}
	if g.State() != Anchored || g.Day() != "Mon 1/6" {
		t.Fatalf("state = %v day = %q", g.State(), g.Day())
	}

	if !g.Enter("Mon 1/6", at(t, monday, "09:30")) {
		t.Fatal("Enter in anchor column should update live end")
	}
	preview, ok := g.Preview()
	if !ok || !preview.Equal(span(t, monday, "09:00", "09:30")) {
		t.Errorf("preview = %s, %v", preview, ok)
	}

	s, outcome, err = g.Down("Mon 1/6", at(t, monday, "10:00"), s)
	if err != nil || outcome != OutcomeCommitted {
		t.Fatalf("second Down = %v, %v; want committed", outcome, err)
	}
	if g.State() != Idle {
		t.Errorf("state after commit = %v, want idle", g.State())
	}
	if got := s.Blocks("Mon 1/6"); len(got) != 1 || !got[0].Equal(span(t, monday, "09:00", "10:00")) {
		t.Errorf("blocks = %v", got)
	}
}

func TestGesture_BackwardsDrag(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "12:00"), s)
	g.Enter("Mon 1/6", at(t, monday, "11:00"))
	s, outcome, err := g.Down("Mon 1/6", at(t, monday, "10:30"), s)
	if err != nil || outcome != OutcomeCommitted {
		t.Fatalf("Down = %v, %v", outcome, err)
	}
	if got := s.Blocks("Mon 1/6"); !got[0].Equal(span(t, monday, "10:30", "12:00")) {
		t.Errorf("block = %s, want 10:30-12:00", got[0])
	}
}

func TestGesture_IgnoresOtherColumns(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}
	tuesday := monday.AddDate(0, 0, 1)

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	g.Enter("Mon 1/6", at(t, monday, "10:00"))
	if g.Enter("Tue 1/7", at(t, tuesday, "15:00")) {
		t.Error("Enter in another column should be ignored")
	}
	if end, _ := g.LiveEnd(); !end.Equal(at(t, monday, "10:00")) {
		t.Errorf("live end = %s, want 10:00", end.Format("15:04"))
	}

	// A click in another column commits with the last live end.
	s, outcome, err := g.Down("Tue 1/7", at(t, tuesday, "16:00"), s)
	if err != nil || outcome != OutcomeCommitted {
		t.Fatalf("Down = %v, %v", outcome, err)
	}
	if len(s.Blocks("Tue 1/7")) != 0 {
		t.Error("selection crossed into another column")
	}
	if got := s.Blocks("Mon 1/6"); len(got) != 1 || !got[0].Equal(span(t, monday, "09:00", "10:00")) {
		t.Errorf("Mon blocks = %v", got)
	}
}

func TestGesture_ZeroLengthDiscarded(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	next, outcome, err := g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	if !errors.Is(err, ErrZeroLength) || outcome != OutcomeDiscarded {
		t.Fatalf("Down = %v, %v; want discarded", outcome, err)
	}
	if next.Len() != 0 {
		t.Errorf("zero-length gesture mutated selection: %d blocks", next.Len())
	}
	if g.Active() {
		t.Error("gesture should be idle after discard")
	}
}

func TestGesture_OverlapRejected(t *testing.T) {
	var g Gesture
	s := mustCommit(t, SelectedTimes{}, "Mon 1/6", span(t, monday, "09:00", "10:00"))

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "09:30"), s)
	next, outcome, err := g.Down("Mon 1/6", at(t, monday, "10:30"), s)
	if !errors.Is(err, ErrOverlap) || outcome != OutcomeRejected {
		t.Fatalf("Down = %v, %v; want rejected", outcome, err)
	}
	if next.Len() != 1 {
		t.Errorf("rejected gesture mutated selection: %d blocks", next.Len())
	}
	if g.Active() {
		t.Error("gesture should be idle after rejection")
	}
}

func TestGesture_AdjacentCommitsMerge(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	s, _, _ = g.Down("Mon 1/6", at(t, monday, "10:00"), s)
	s, _, _ = g.Down("Mon 1/6", at(t, monday, "10:00"), s)
	s, outcome, err := g.Down("Mon 1/6", at(t, monday, "11:00"), s)
	if err != nil || outcome != OutcomeCommitted {
		t.Fatalf("adjacent commit = %v, %v", outcome, err)
	}

	merged := MergeDay(s.Blocks("Mon 1/6"))
	if len(merged) != 1 || !merged[0].Equal(span(t, monday, "09:00", "11:00")) {
		t.Errorf("merged = %v, want single 09:00-11:00", merged)
	}
}

func TestGesture_SyncResets(t *testing.T) {
	var g Gesture
	s := SelectedTimes{}

	if g.Sync(0) {
		t.Error("unchanged counter should not reset")
	}

	s, _, _ = g.Down("Mon 1/6", at(t, monday, "09:00"), s)
	g.Enter("Mon 1/6", at(t, monday, "10:00"))

	if !g.Sync(1) {
		t.Fatal("changed counter should reset")
	}
	if g.Active() {
		t.Error("gesture still anchored after reset")
	}
	if _, ok := g.Anchor(); ok {
		t.Error("anchor still set after reset")
	}
	if _, ok := g.LiveEnd(); ok {
		t.Error("live end still set after reset")
	}
	if _, ok := g.Preview(); ok {
		t.Error("preview still available after reset")
	}
	if g.Sync(1) {
		t.Error("same counter twice should not reset again")
	}

	// The next click anchors instead of committing.
	_, outcome, _ := g.Down("Mon 1/6", at(t, monday, "11:00"), s)
	if outcome != OutcomeAnchored {
		t.Errorf("Down after reset = %v, want anchored", outcome)
	}
}

func TestGesture_Cancel(t *testing.T) {
	var g Gesture
	g.Down("Mon 1/6", at(t, monday, "09:00"), SelectedTimes{})
	g.Cancel()
	if g.State() != Idle || g.Day() != "" {
		t.Errorf("state = %v day = %q after cancel", g.State(), g.Day())
	}
	if g.Enter("Mon 1/6", at(t, monday, "10:00")) {
		t.Error("Enter while idle should be ignored")
	}
}
