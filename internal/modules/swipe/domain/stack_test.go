package domain

import "testing"

func newController(length int) (*Controller, *SessionState) {
	session := NewSessionState(length)
	return NewController(&session, NewAnimator(Viewport{Width: 400, Height: 800}), DefaultInterpreter()), &session
}

func swipe(c *Controller, d Decision) []Event {
	var events []Event
	for _, s := range Fling(d) {
		events = append(events, c.Handle(s)...)
	}
	return events
}

func TestCommitEmitsCommittedBeforeAdvance(t *testing.T) {
	t.Parallel()
	c, session := newController(3)

	events := swipe(c, DecisionCommit)
	if c.Phase() != PhaseExiting || !session.SwipeInProgress {
		t.Fatalf("expected exiting with guard set, got %s guard=%v", c.Phase(), session.SwipeInProgress)
	}
	if len(events) != 2 {
		t.Fatalf("expected decided and committed events, got %#v", events)
	}
	if ev, ok := events[0].(DecidedEvent); !ok || ev.Decision != DecisionCommit || ev.Index != 0 {
		t.Fatalf("unexpected first event %#v", events[0])
	}
	if ev, ok := events[1].(CommittedEvent); !ok || ev.Index != 0 {
		t.Fatalf("unexpected second event %#v", events[1])
	}
	if session.Index != 0 {
		t.Fatalf("index must not move before the exit completes")
	}

	events = c.Tick(ExitDuration)
	if len(events) != 1 {
		t.Fatalf("expected one advance event, got %#v", events)
	}
	if ev, ok := events[0].(AdvancedEvent); !ok || ev.Index != 1 {
		t.Fatalf("unexpected event %#v", events[0])
	}
	if c.Phase() != PhaseIdle || session.SwipeInProgress || session.Index != 1 {
		t.Fatalf("expected idle at index 1, got %s index=%d", c.Phase(), session.Index)
	}
}

func TestSamplesIgnoredWhileExiting(t *testing.T) {
	t.Parallel()
	c, session := newController(3)
	swipe(c, DecisionReject)
	if events := swipe(c, DecisionCommit); events != nil {
		t.Fatalf("expected samples to be ignored, got %#v", events)
	}
	c.Tick(ExitDuration / 2)
	if c.Phase() != PhaseExiting {
		t.Fatalf("still exiting expected, got %s", c.Phase())
	}
	c.Tick(ExitDuration)
	if session.Index != 1 {
		t.Fatalf("only one advance expected, index=%d", session.Index)
	}
}

func TestGuardBlocksNewGestures(t *testing.T) {
	t.Parallel()
	c, session := newController(2)
	session.SwipeInProgress = true
	if events := swipe(c, DecisionCommit); events != nil || c.Phase() != PhaseIdle {
		t.Fatalf("guarded controller must ignore samples, phase=%s", c.Phase())
	}
}

func TestReleaseWithoutDecisionSpringsBack(t *testing.T) {
	t.Parallel()
	c, session := newController(2)
	c.Handle(DragSample{Active: true, DX: 30})
	if c.Phase() != PhaseDragging {
		t.Fatalf("expected dragging, got %s", c.Phase())
	}
	if events := c.Handle(DragSample{DX: 30, DY: 80, VY: 0.9}); events != nil {
		t.Fatalf("downward release must not decide: %#v", events)
	}
	if c.Phase() != PhaseIdle || session.SwipeInProgress {
		t.Fatalf("expected idle without guard, got %s", c.Phase())
	}
	c.Tick(SpringDuration)
	if got := c.Animator().Current(); got != Neutral {
		t.Fatalf("expected neutral transform, got %+v", got)
	}
}

func TestExhaustionAndResequence(t *testing.T) {
	t.Parallel()
	c, session := newController(2)

	swipe(c, DecisionSkip)
	c.Tick(ExitDuration)
	swipe(c, DecisionReject)
	events := c.Tick(ExitDuration)
	if len(events) != 1 {
		t.Fatalf("expected exhausted event, got %#v", events)
	}
	if _, ok := events[0].(ExhaustedEvent); !ok {
		t.Fatalf("unexpected event %#v", events[0])
	}
	if c.Phase() != PhaseExhausted || session.Index != 1 {
		t.Fatalf("expected exhausted at last index, got %s index=%d", c.Phase(), session.Index)
	}
	if events := swipe(c, DecisionCommit); events != nil || session.Index != 1 {
		t.Fatalf("exhausted controller must not advance")
	}

	c.Resequence(4)
	if c.Phase() != PhaseIdle || session.Index != 0 || session.Length != 4 {
		t.Fatalf("resequence should restart, got %s index=%d len=%d", c.Phase(), session.Index, session.Length)
	}
	c.Resequence(0)
	if c.Phase() != PhaseExhausted {
		t.Fatalf("empty sequence should be exhausted")
	}
}

func TestSessionStateClampsAndSelection(t *testing.T) {
	t.Parallel()
	s := NewSessionState(1)
	if s.Advance() || s.Index != 0 {
		t.Fatalf("single candidate session must not advance")
	}
	s.OpenModal("7")
	if id, ok := s.Selected(); !ok || id != "7" || !s.ModalVisible {
		t.Fatalf("expected selection 7, got %q %v", id, ok)
	}
	s.CloseModal()
	if _, ok := s.Selected(); ok || s.ModalVisible {
		t.Fatalf("close should clear selection")
	}
	s.Resequence(-3)
	if s.Length != 0 || s.Index != 0 || !s.Empty() {
		t.Fatalf("negative length should clamp to empty: %+v", s)
	}
}
