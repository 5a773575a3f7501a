package domain

import (
	"testing"
	"time"
)

func TestClassifyNeverDecidesWhileActive(t *testing.T) {
	t.Parallel()
	in := DefaultInterpreter()
	samples := []DragSample{
		{Active: true, DX: 400, VX: 3},
		{Active: true, DX: -400, VX: -3},
		{Active: true, DY: -400, VY: -3},
		{Active: true, DX: 1, DY: 1, VX: 0.21, VY: 0.21},
	}
	for _, s := range samples {
		if got := in.Classify(s); got != DecisionNone {
			t.Fatalf("active sample %+v classified as %s", s, got)
		}
	}
}

func TestClassifyReleases(t *testing.T) {
	t.Parallel()
	in := DefaultInterpreter()
	cases := []struct {
		name   string
		sample DragSample
		want   Decision
	}{
		{"rightward fling commits", DragSample{DX: 120, VX: 0.25}, DecisionCommit},
		{"leftward fling rejects", DragSample{DX: -120, VX: 0.25}, DecisionReject},
		{"upward fling skips", DragSample{DX: 10, DY: -60, VY: 0.25}, DecisionSkip},
		{"downward fling snaps back", DragSample{DX: 10, DY: 60, VY: 0.25}, DecisionNone},
		{"fast downward fling snaps back", DragSample{DY: 400, VX: 5, VY: 5}, DecisionNone},
		{"short upward fling snaps back", DragSample{DY: -50, VY: 0.5}, DecisionNone},
		{"slow release snaps back", DragSample{DX: 300, VX: 0.2, VY: 0.2}, DecisionNone},
		{"horizontal wins ties on distance", DragSample{DX: 80, DY: -70, VX: 0.3, VY: 0.3}, DecisionCommit},
	}
	for _, tc := range cases {
		if got := in.Classify(tc.sample); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestDragTrackerMeasuresFromPressPoint(t *testing.T) {
	t.Parallel()
	start := time.Unix(0, 0)
	tr := DragTracker{}
	tr.Press(10, 10, start)
	s := tr.Move(30, 5, start.Add(10*time.Millisecond))
	if !s.Active || s.DX != 20 || s.DY != -5 {
		t.Fatalf("unexpected move sample %+v", s)
	}
	if s.VX != 2 || s.VY != -0.5 {
		t.Fatalf("unexpected velocity %+v", s)
	}
	rel := tr.Release(30, 5, start.Add(30*time.Millisecond))
	if rel.Active || rel.DX != 20 || rel.VX != 2 {
		t.Fatalf("prompt release should keep last velocity: %+v", rel)
	}
	if tr.Pressed() {
		t.Fatalf("tracker should be released")
	}
	if got := tr.Move(50, 50, start.Add(time.Second)); got != (DragSample{}) {
		t.Fatalf("moves after release must be empty, got %+v", got)
	}
}

func TestReleaseAfterRestSpringsBack(t *testing.T) {
	t.Parallel()
	in := DefaultInterpreter()
	start := time.Unix(0, 0)
	tr := DragTracker{}
	tr.Press(0, 0, start)
	moving := tr.Move(120, 0, start.Add(20*time.Millisecond))
	if moving.VX != 6 {
		t.Fatalf("unexpected drag velocity %+v", moving)
	}
	rel := tr.Release(120, 0, start.Add(5*time.Second))
	if rel.VX != 0 || rel.VY != 0 || rel.DX != 120 {
		t.Fatalf("rested release should carry no velocity: %+v", rel)
	}
	if got := in.Classify(rel); got != DecisionNone {
		t.Fatalf("rested release classified as %s", got)
	}
}

func TestFlingClassifiesAsRequested(t *testing.T) {
	t.Parallel()
	in := DefaultInterpreter()
	for _, d := range []Decision{DecisionCommit, DecisionReject, DecisionSkip} {
		samples := Fling(d)
		if len(samples) != 2 || !samples[0].Active {
			t.Fatalf("fling %s should press then release: %+v", d, samples)
		}
		if got := in.Classify(samples[1]); got != d {
			t.Fatalf("fling %s classified as %s", d, got)
		}
	}
}
