package schedule

import (
	"errors"
	"time"
)

// GestureState is the phase of the two-click selection gesture.
type GestureState int

const (
	Idle     GestureState = iota // no anchor; the next press anchors
	Anchored                     // anchor set; the next press commits
)

func (s GestureState) String() string {
	switch s {
	case Anchored:
		return "anchored"
	default:
		return "idle"
	}
}

// Outcome describes what a pointer-down did.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeAnchored          // first click set the anchor
	OutcomeCommitted         // second click committed a new block
	OutcomeDiscarded         // second click on the anchor: zero-length selection
	OutcomeRejected          // second click produced an overlapping selection
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnchored:
		return "anchored"
	case OutcomeCommitted:
		return "committed"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeRejected:
		return "rejected"
	default:
		return "none"
	}
}

// Gesture tracks an in-progress anchor → live endpoint → commit selection.
// The zero value is an idle gesture. At most one gesture is active at a time:
// a second pointer-down while anchored always commits, never re-anchors.
type Gesture struct {
	state     GestureState
	day       DayKey
	anchor    time.Time
	liveEnd   time.Time
	resetSeen uint64
}

// State returns the current phase.
func (g *Gesture) State() GestureState {
	return g.state
}

// Active reports whether an anchor is set.
func (g *Gesture) Active() bool {
	return g.state == Anchored
}

// Day returns the day column the gesture is anchored to.
func (g *Gesture) Day() DayKey {
	return g.day
}

// Anchor returns the anchor instant and whether it is set.
func (g *Gesture) Anchor() (time.Time, bool) {
	return g.anchor, g.state == Anchored
}

// LiveEnd returns the live endpoint and whether it is set.
func (g *Gesture) LiveEnd() (time.Time, bool) {
	return g.liveEnd, g.state == Anchored
}

// Preview returns the provisional interval while anchored.
// The preview may be zero-length; it is only meant for rendering.
func (g *Gesture) Preview() (Interval, bool) {
	if g.state != Anchored {
		return Interval{}, false
	}
	return NewInterval(g.anchor, g.liveEnd), true
}

// Down handles a pointer-down on a slot.
//
// While idle it anchors the gesture on (day, t). While anchored it completes
// the gesture: a click in the anchor's column also moves the live endpoint
// to t, a click in any other column commits with the last live endpoint.
// SelectedTimes is only replaced on OutcomeCommitted; rejected selections
// return the input unchanged together with ErrZeroLength or ErrOverlap.
func (g *Gesture) Down(day DayKey, t time.Time, selected SelectedTimes) (SelectedTimes, Outcome, error) {
	if g.state == Idle {
		g.state = Anchored
		g.day = day
		g.anchor = t
		g.liveEnd = t
		return selected, OutcomeAnchored, nil
	}

	if day == g.day {
		g.liveEnd = t
	}
	candidate := NewInterval(g.anchor, g.liveEnd)
	target := g.day
	g.Cancel()

	updated, err := selected.Commit(target, candidate)
	switch {
	case err == nil:
		return updated, OutcomeCommitted, nil
	case errors.Is(err, ErrZeroLength):
		return selected, OutcomeDiscarded, err
	default:
		return selected, OutcomeRejected, err
	}
}

// Enter handles the pointer entering a slot. Only slots in the anchor's day
// column move the live endpoint; everything else is ignored.
func (g *Gesture) Enter(day DayKey, t time.Time) bool {
	if g.state != Anchored || day != g.day {
		return false
	}
	g.liveEnd = t
	return true
}

// Cancel returns the gesture to idle and clears the anchor and live endpoint.
func (g *Gesture) Cancel() {
	g.state = Idle
	g.day = ""
	g.anchor = time.Time{}
	g.liveEnd = time.Time{}
}

// Sync observes the external reset counter. Any change since the last
// observed value cancels the gesture. Returns true if a reset happened.
func (g *Gesture) Sync(counter uint64) bool {
	if counter == g.resetSeen {
		return false
	}
	g.resetSeen = counter
	g.Cancel()
	return true
}
