package domain

import (
	"math"
	"time"
)

type Decision int

const (
	DecisionNone Decision = iota
	DecisionReject
	DecisionCommit
	DecisionSkip
)

func (d Decision) String() string {
	switch d {
	case DecisionReject:
		return "reject"
	case DecisionCommit:
		return "commit"
	case DecisionSkip:
		return "skip"
	default:
		return "none"
	}
}

// DragSample is one pointer reading. DX and DY are measured from the press
// point; VX and VY are in units per millisecond.
type DragSample struct {
	Active bool
	DX     float64
	DY     float64
	VX     float64
	VY     float64
}

// Interpreter classifies a released drag into a terminal decision.
type Interpreter struct {
	VelocityThreshold float64
	SkipDistance      float64
}

func DefaultInterpreter() Interpreter {
	return Interpreter{VelocityThreshold: 0.2, SkipDistance: 50}
}

func (i Interpreter) Classify(s DragSample) Decision {
	if s.Active {
		return DecisionNone
	}
	if math.Abs(s.VX) <= i.VelocityThreshold && math.Abs(s.VY) <= i.VelocityThreshold {
		return DecisionNone
	}
	if math.Abs(s.DX) > math.Abs(s.DY) {
		if s.DX > 0 {
			return DecisionCommit
		}
		return DecisionReject
	}
	if s.DY < -i.SkipDistance {
		return DecisionSkip
	}
	return DecisionNone
}

// releaseRest is how long the pointer may rest before a release stops
// carrying the velocity of the last movement.
const releaseRest = 32 * time.Millisecond

// DragTracker turns absolute pointer positions into drag samples.
type DragTracker struct {
	pressed bool
	originX float64
	originY float64
	lastX   float64
	lastY   float64
	lastAt  time.Time
	vx      float64
	vy      float64
}

func (t *DragTracker) Pressed() bool {
	return t.pressed
}

func (t *DragTracker) Press(x, y float64, at time.Time) DragSample {
	*t = DragTracker{pressed: true, originX: x, originY: y, lastX: x, lastY: y, lastAt: at}
	return DragSample{Active: true}
}

func (t *DragTracker) Move(x, y float64, at time.Time) DragSample {
	if !t.pressed {
		return DragSample{}
	}
	t.track(x, y, at)
	return DragSample{Active: true, DX: x - t.originX, DY: y - t.originY, VX: t.vx, VY: t.vy}
}

// Release ends the drag. A release at the last position keeps the velocity
// of the final movement unless the pointer rested longer than releaseRest.
func (t *DragTracker) Release(x, y float64, at time.Time) DragSample {
	if !t.pressed {
		return DragSample{}
	}
	if at.Sub(t.lastAt) > releaseRest {
		t.vx, t.vy = 0, 0
	}
	t.track(x, y, at)
	t.pressed = false
	return DragSample{DX: x - t.originX, DY: y - t.originY, VX: t.vx, VY: t.vy}
}

func (t *DragTracker) track(x, y float64, at time.Time) {
	if x == t.lastX && y == t.lastY {
		return
	}
	if ms := float64(at.Sub(t.lastAt)) / float64(time.Millisecond); ms > 0 {
		t.vx = (x - t.lastX) / ms
		t.vy = (y - t.lastY) / ms
	}
	t.lastX, t.lastY, t.lastAt = x, y, at
}

// Fling returns a press and a release that classify as d. Keyboard input
// uses it to drive the same pipeline as pointer drags.
func Fling(d Decision) []DragSample {
	release := DragSample{}
	switch d {
	case DecisionCommit:
		release = DragSample{DX: 120, VX: 0.5}
	case DecisionReject:
		release = DragSample{DX: -120, VX: -0.5}
	case DecisionSkip:
		release = DragSample{DY: -120, VY: -0.5}
	}
	return []DragSample{{Active: true}, release}
}
