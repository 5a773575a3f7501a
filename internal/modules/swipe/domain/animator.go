package domain

import (
	"math"
	"time"
)

const (
	UpwardCap       = 100.0
	RotationDivisor = 10.0
	ScaleDivisor    = 1000.0
	ScaleFloor      = 0.9
	ExitScale       = 0.8
	ExitRotation    = 10.0
	NextCardRange   = 150.0

	ExitDuration   = 300 * time.Millisecond
	SpringDuration = 200 * time.Millisecond
)

// Transform is the visual state of the active card.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	Scale    float64
	Opacity  float64
}

var Neutral = Transform{Scale: 1, Opacity: 1}

func (t Transform) Lerp(to Transform, p float64) Transform {
	mix := func(a, b float64) float64 { return a + (b-a)*p }
	return Transform{
		X:        mix(t.X, to.X),
		Y:        mix(t.Y, to.Y),
		Rotation: mix(t.Rotation, to.Rotation),
		Scale:    mix(t.Scale, to.Scale),
		Opacity:  mix(t.Opacity, to.Opacity),
	}
}

// NextCard is the visual state of the card queued behind the active one.
type NextCard struct {
	Scale   float64
	Opacity float64
	YOffset float64
}

var (
	NextCardRest  = NextCard{Scale: 0.95, Opacity: 0.8, YOffset: 10}
	NextCardFront = NextCard{Scale: 1, Opacity: 1, YOffset: 0}
)

// NextCardFor grows the queued card as the active card moves sideways.
func NextCardFor(activeX float64) NextCard {
	p := math.Min(math.Abs(activeX)/NextCardRange, 1)
	return NextCard{
		Scale:   NextCardRest.Scale + (NextCardFront.Scale-NextCardRest.Scale)*p,
		Opacity: NextCardRest.Opacity + (NextCardFront.Opacity-NextCardRest.Opacity)*p,
		YOffset: NextCardRest.YOffset + (NextCardFront.YOffset-NextCardRest.YOffset)*p,
	}
}

// Badges holds the intensity of the decision labels drawn over the active
// card, each in [0, 1].
type Badges struct {
	Back float64
	Pass float64
	Skip float64
}

// BadgesFor fades labels in over 100 units sideways or 50 units upward.
func BadgesFor(t Transform) Badges {
	return Badges{
		Back: clamp01(t.X / 100),
		Pass: clamp01(-t.X / 100),
		Skip: clamp01(-t.Y / 50),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

type Viewport struct {
	Width  float64
	Height float64
}

// DragTransform follows the pointer with tilt and shrink.
func DragTransform(s DragSample) Transform {
	return Transform{
		X:        s.DX,
		Y:        math.Max(s.DY, -UpwardCap),
		Rotation: s.DX / RotationDivisor,
		Scale:    math.Max(1-math.Abs(s.DX)/ScaleDivisor, ScaleFloor),
		Opacity:  1,
	}
}

// ExitTarget is the off-canvas transform for a terminal decision.
func ExitTarget(from Transform, d Decision, vp Viewport) Transform {
	to := Transform{X: from.X, Y: from.Y, Rotation: from.Rotation, Scale: ExitScale, Opacity: 0}
	switch d {
	case DecisionReject:
		to.X = -vp.Width
		to.Rotation = from.Rotation - ExitRotation
	case DecisionCommit:
		to.X = vp.Width
		to.Rotation = from.Rotation + ExitRotation
	case DecisionSkip:
		to.Y = -vp.Height
	}
	return to
}

// Animator owns the active card transform and the tween moving it.
type Animator struct {
	viewport Viewport
	current  Transform
	tween    *Tween
}

func NewAnimator(vp Viewport) *Animator {
	return &Animator{viewport: vp, current: Neutral}
}

func (a *Animator) Current() Transform {
	return a.current
}

func (a *Animator) Next() NextCard {
	return NextCardFor(a.current.X)
}

func (a *Animator) Animating() bool {
	return a.tween != nil
}

func (a *Animator) Resize(vp Viewport) {
	a.viewport = vp
}

// Drag applies a live sample immediately and cancels any spring-back.
func (a *Animator) Drag(s DragSample) {
	a.tween = nil
	a.current = DragTransform(s)
}

// Exit flies the card off canvas. When the flight ends onDone runs first and
// the transform then snaps back to neutral.
func (a *Animator) Exit(d Decision, onDone func()) {
	target := ExitTarget(a.current, d, a.viewport)
	a.tween = NewTween(a.current, target, ExitDuration, EaseOutCubic, func() {
		if onDone != nil {
			onDone()
		}
		a.current = Neutral
		a.tween = nil
	})
}

func (a *Animator) SpringBack() {
	a.tween = NewTween(a.current, Neutral, SpringDuration, EaseOutCubic, func() {
		a.tween = nil
	})
}

func (a *Animator) Tick(dt time.Duration) {
	if a.tween == nil {
		return
	}
	a.tween.Step(dt, func(v Transform) { a.current = v })
}
