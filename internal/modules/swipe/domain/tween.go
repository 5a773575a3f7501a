package domain

import (
	"math"
	"time"
)

type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Tween interpolates between two transforms over a fixed duration and calls
// onDone exactly once when it reaches the end.
type Tween struct {
	from     Transform
	to       Transform
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	onDone   func()
	fired    bool
}

func NewTween(from, to Transform, duration time.Duration, ease Easing, onDone func()) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease, onDone: onDone}
}

func (t *Tween) Value() Transform {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	p := t.ease(float64(t.elapsed) / float64(t.duration))
	return t.from.Lerp(t.to, p)
}

func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Step advances the tween by dt, hands the new value to apply and then fires
// the completion callback if the end was reached.
func (t *Tween) Step(dt time.Duration, apply func(Transform)) {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	apply(t.Value())
	if t.Done() && !t.fired {
		t.fired = true
		if t.onDone != nil {
			t.onDone()
		}
	}
}
