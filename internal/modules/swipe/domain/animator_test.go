package domain

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sameTransform(a, b Transform) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Rotation, b.Rotation) && near(a.Scale, b.Scale) && near(a.Opacity, b.Opacity)
}

func TestDragTransformBounds(t *testing.T) {
	t.Parallel()
	got := DragTransform(DragSample{Active: true, DX: 50, DY: -300})
	want := Transform{X: 50, Y: -100, Rotation: 5, Scale: 0.95, Opacity: 1}
	if !sameTransform(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	got = DragTransform(DragSample{Active: true, DX: -500, DY: 250})
	if !near(got.Scale, ScaleFloor) || !near(got.Y, 250) || !near(got.Rotation, -50) {
		t.Fatalf("scale floor or downward movement wrong: %+v", got)
	}
}

func TestNextCardApproachesWithDrag(t *testing.T) {
	t.Parallel()
	if got := NextCardFor(0); got != NextCardRest {
		t.Fatalf("rest state: %+v", got)
	}
	if got := NextCardFor(-400); got != NextCardFront {
		t.Fatalf("front state: %+v", got)
	}
	mid := NextCardFor(75)
	if !near(mid.Scale, 0.975) || !near(mid.Opacity, 0.9) || !near(mid.YOffset, 5) {
		t.Fatalf("midpoint: %+v", mid)
	}
}

func TestExitRunsCallbackThenResets(t *testing.T) {
	t.Parallel()
	a := NewAnimator(Viewport{Width: 400, Height: 800})
	a.Drag(DragSample{Active: true, DX: 100})
	calls := 0
	var atCallback Transform
	a.Exit(DecisionCommit, func() {
		calls++
		atCallback = a.Current()
	})

	a.Tick(150 * time.Millisecond)
	mid := a.Current()
	if mid.X <= 100 || mid.X >= 400 || mid.Opacity <= 0 || mid.Opacity >= 1 {
		t.Fatalf("expected a card in flight, got %+v", mid)
	}
	if calls != 0 {
		t.Fatalf("callback fired early")
	}

	a.Tick(200 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected one callback, got %d", calls)
	}
	if !sameTransform(atCallback, Transform{X: 400, Rotation: 20, Scale: ExitScale}) {
		t.Fatalf("callback should see the off-canvas transform, got %+v", atCallback)
	}
	if !sameTransform(a.Current(), Neutral) || a.Animating() {
		t.Fatalf("expected neutral after exit, got %+v", a.Current())
	}
	a.Tick(time.Second)
	if calls != 1 {
		t.Fatalf("callback fired twice")
	}
}

func TestExitTargets(t *testing.T) {
	t.Parallel()
	vp := Viewport{Width: 320, Height: 640}
	from := Transform{X: -40, Y: -20, Rotation: -4, Scale: 0.96, Opacity: 1}
	if got := ExitTarget(from, DecisionReject, vp); !near(got.X, -320) || !near(got.Rotation, -14) || got.Opacity != 0 {
		t.Fatalf("reject target %+v", got)
	}
	if got := ExitTarget(from, DecisionSkip, vp); !near(got.Y, -640) || !near(got.X, -40) || !near(got.Scale, ExitScale) {
		t.Fatalf("skip target %+v", got)
	}
}

func TestSpringBackReturnsToNeutral(t *testing.T) {
	t.Parallel()
	a := NewAnimator(Viewport{Width: 400, Height: 800})
	a.Drag(DragSample{Active: true, DX: -60, DY: 30})
	a.SpringBack()
	a.Tick(100 * time.Millisecond)
	if x := a.Current().X; x <= -60 || x >= 0 {
		t.Fatalf("spring-back should be part way home, got %+v", a.Current())
	}
	a.Tick(100 * time.Millisecond)
	if !sameTransform(a.Current(), Neutral) || a.Animating() {
		t.Fatalf("expected neutral, got %+v", a.Current())
	}
}

func TestTweenEasesAndFiresOnce(t *testing.T) {
	t.Parallel()
	fired := 0
	tw := NewTween(Neutral, Transform{X: 100, Scale: 1, Opacity: 1}, 100*time.Millisecond, nil, func() { fired++ })
	var got Transform
	tw.Step(25*time.Millisecond, func(v Transform) { got = v })
	if !near(got.X, 25) {
		t.Fatalf("linear tween at 25%%: %+v", got)
	}
	tw.Step(time.Second, func(v Transform) { got = v })
	tw.Step(time.Second, func(v Transform) { got = v })
	if !near(got.X, 100) || fired != 1 || !tw.Done() {
		t.Fatalf("tween end: %+v fired=%d", got, fired)
	}
	if !near(EaseOutCubic(0.5), 0.875) {
		t.Fatalf("ease-out midpoint %v", EaseOutCubic(0.5))
	}
}

func TestBadgesFollowDrag(t *testing.T) {
	t.Parallel()
	b := BadgesFor(Transform{X: 50, Y: -100})
	if !near(b.Back, 0.5) || b.Pass != 0 || !near(b.Skip, 1) {
		t.Fatalf("unexpected badges %+v", b)
	}
	b = BadgesFor(Transform{X: -300, Y: 40})
	if b.Back != 0 || !near(b.Pass, 1) || b.Skip != 0 {
		t.Fatalf("unexpected badges %+v", b)
	}
}
