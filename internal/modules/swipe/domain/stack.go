package domain

import "time"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseExiting
	PhaseExhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseExiting:
		return "exiting"
	case PhaseExhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

type Event interface {
	isEvent()
}

// DecidedEvent is emitted when a release produces a terminal decision.
type DecidedEvent struct {
	Index    int
	Decision Decision
}

// CommittedEvent is emitted with a commit decision, before the index moves.
type CommittedEvent struct {
	Index int
}

type AdvancedEvent struct {
	Index int
}

type ExhaustedEvent struct {
	Index int
}

func (DecidedEvent) isEvent()   {}
func (CommittedEvent) isEvent() {}
func (AdvancedEvent) isEvent()  {}
func (ExhaustedEvent) isEvent() {}

// Controller runs drags through the interpreter and animator and moves the
// session along the candidate sequence.
type Controller struct {
	interpreter Interpreter
	animator    *Animator
	session     *SessionState
	phase       Phase
	pending     []Event
}

func NewController(session *SessionState, animator *Animator, interpreter Interpreter) *Controller {
	c := &Controller{interpreter: interpreter, animator: animator, session: session}
	if session.Empty() {
		c.phase = PhaseExhausted
	}
	return c
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) Animator() *Animator {
	return c.animator
}

// Handle feeds one drag sample. Samples are ignored while an exit is in
// flight or the sequence is exhausted.
func (c *Controller) Handle(s DragSample) []Event {
	if c.session.SwipeInProgress || c.phase == PhaseExiting || c.phase == PhaseExhausted {
		return nil
	}
	switch c.phase {
	case PhaseIdle:
		if !s.Active {
			return nil
		}
		c.phase = PhaseDragging
		c.animator.Drag(s)
	case PhaseDragging:
		if s.Active {
			c.animator.Drag(s)
			return nil
		}
		decision := c.interpreter.Classify(s)
		if decision == DecisionNone {
			c.phase = PhaseIdle
			c.animator.SpringBack()
			return nil
		}
		c.phase = PhaseExiting
		c.session.SwipeInProgress = true
		c.pending = append(c.pending, DecidedEvent{Index: c.session.Index, Decision: decision})
		if decision == DecisionCommit {
			c.pending = append(c.pending, CommittedEvent{Index: c.session.Index})
		}
		c.animator.Exit(decision, c.exitDone)
	}
	return c.drain()
}

// Tick advances animations by dt and returns events raised by them.
func (c *Controller) Tick(dt time.Duration) []Event {
	c.animator.Tick(dt)
	return c.drain()
}

// Resequence starts over on a new candidate list.
func (c *Controller) Resequence(length int) {
	c.session.Resequence(length)
	c.animator = NewAnimator(c.animator.viewport)
	c.pending = nil
	c.phase = PhaseIdle
	if c.session.Empty() {
		c.phase = PhaseExhausted
	}
}

func (c *Controller) exitDone() {
	advanced := c.session.Advance()
	c.session.SwipeInProgress = false
	if advanced {
		c.phase = PhaseIdle
		c.pending = append(c.pending, AdvancedEvent{Index: c.session.Index})
		return
	}
	c.phase = PhaseExhausted
	c.pending = append(c.pending, ExhaustedEvent{Index: c.session.Index})
}

func (c *Controller) drain() []Event {
	if len(c.pending) == 0 {
		return nil
	}
	out := c.pending
	c.pending = nil
	return out
}
