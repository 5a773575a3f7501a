package usecase

import (
	"fmt"
	"time"

	backingdto "chemlab/internal/modules/backing/dto"
	couplesdto "chemlab/internal/modules/couples/dto"
	"chemlab/internal/modules/swipe/domain"
	"chemlab/internal/modules/swipe/dto"
	swipein "chemlab/internal/modules/swipe/port/in"
	"chemlab/internal/platform/clock"
	apperrors "chemlab/internal/platform/errors"
)

// Deck holds one swipe session. It is driven from a single event loop and
// is not safe for concurrent use.
type Deck struct {
	clock      clock.Clock
	couples    []couplesdto.CoupleOutput
	session    domain.SessionState
	controller *domain.Controller
	tracker    domain.DragTracker
	backings   []backingdto.BackingOutput
	verdicts   []dto.Verdict
}

func NewDeck(clk clock.Clock, vp dto.Viewport) swipein.Deck {
	d := &Deck{clock: clk}
	d.session = domain.NewSessionState(0)
	d.controller = domain.NewController(&d.session, domain.NewAnimator(toViewport(vp)), domain.DefaultInterpreter())
	return d
}

// SetCouples replaces the candidate list and restarts at the first couple.
func (d *Deck) SetCouples(couples []couplesdto.CoupleOutput) {
	d.couples = append([]couplesdto.CoupleOutput(nil), couples...)
	d.tracker = domain.DragTracker{}
	d.controller.Resequence(len(d.couples))
}

func (d *Deck) Couples() []couplesdto.CoupleOutput {
	return append([]couplesdto.CoupleOutput(nil), d.couples...)
}

func (d *Deck) Current() (couplesdto.CoupleOutput, bool) {
	return d.at(d.session.Index)
}

func (d *Deck) Peek() (couplesdto.CoupleOutput, bool) {
	return d.at(d.session.Index + 1)
}

func (d *Deck) Handle(sample dto.Sample) []dto.Event {
	if d.session.ModalVisible {
		return nil
	}
	return d.apply(d.controller.Handle(domain.DragSample{
		Active: sample.Active,
		DX:     sample.DX,
		DY:     sample.DY,
		VX:     sample.VX,
		VY:     sample.VY,
	}))
}

func (d *Deck) Press(x, y float64, at time.Time) []dto.Event {
	return d.Handle(toSample(d.tracker.Press(x, y, at)))
}

func (d *Deck) Move(x, y float64, at time.Time) []dto.Event {
	if !d.tracker.Pressed() {
		return nil
	}
	return d.Handle(toSample(d.tracker.Move(x, y, at)))
}

func (d *Deck) Release(x, y float64, at time.Time) []dto.Event {
	if !d.tracker.Pressed() {
		return nil
	}
	return d.Handle(toSample(d.tracker.Release(x, y, at)))
}

// Fling plays a synthetic press and release that classify as decision.
func (d *Deck) Fling(decision string) []dto.Event {
	var events []dto.Event
	for _, s := range domain.Fling(parseDecision(decision)) {
		events = append(events, d.Handle(toSample(s))...)
	}
	return events
}

func (d *Deck) Tick(dt time.Duration) []dto.Event {
	return d.apply(d.controller.Tick(dt))
}

func (d *Deck) Resize(vp dto.Viewport) {
	d.controller.Animator().Resize(toViewport(vp))
}

func (d *Deck) Frame() dto.Frame {
	anim := d.controller.Animator()
	current := anim.Current()
	next := anim.Next()
	selected, _ := d.session.Selected()
	_, hasNext := d.Peek()
	badges := domain.BadgesFor(current)
	return dto.Frame{
		Phase:            d.controller.Phase().String(),
		Animating:        anim.Animating(),
		Index:            d.session.Index,
		Length:           d.session.Length,
		SwipeInProgress:  d.session.SwipeInProgress,
		ModalVisible:     d.session.ModalVisible,
		SelectedCoupleID: selected,
		Current: dto.Transform{
			X:        current.X,
			Y:        current.Y,
			Rotation: current.Rotation,
			Scale:    current.Scale,
			Opacity:  current.Opacity,
		},
		Badges:  dto.Badges{Back: badges.Back, Pass: badges.Pass, Skip: badges.Skip},
		Next:    dto.NextCard{Scale: next.Scale, Opacity: next.Opacity, YOffset: next.YOffset},
		HasNext: hasNext,
	}
}

func (d *Deck) OpenBacking(coupleID string) error {
	for _, c := range d.couples {
		if c.ID == coupleID {
			d.session.OpenModal(coupleID)
			return nil
		}
	}
	return fmt.Errorf("couple %s: %w", coupleID, apperrors.ErrNotFound)
}

func (d *Deck) CloseBacking() {
	d.session.CloseModal()
}

func (d *Deck) AddBackings(backings []backingdto.BackingOutput) {
	d.backings = append(d.backings, backings...)
}

func (d *Deck) RecordVerdict(coupleID, decision string) {
	d.verdicts = append(d.verdicts, dto.Verdict{CoupleID: coupleID, Decision: decision, At: d.clock.Now()})
}

func (d *Deck) Backings() []backingdto.BackingOutput {
	return append([]backingdto.BackingOutput(nil), d.backings...)
}

func (d *Deck) Verdicts() []dto.Verdict {
	return append([]dto.Verdict(nil), d.verdicts...)
}

func (d *Deck) Summary() dto.Summary {
	out := dto.Summary{Reviewed: len(d.verdicts), Backings: len(d.backings)}
	for _, v := range d.verdicts {
		switch v.Decision {
		case dto.DecisionCommit:
			out.Committed++
		case dto.DecisionReject:
			out.Rejected++
		case dto.DecisionSkip:
			out.Skipped++
		}
	}
	for _, b := range d.backings {
		out.TotalStaked += b.Amount
		out.PotentialWinnings += b.PotentialWinnings
	}
	return out
}

// apply records verdicts and opens the backing modal as controller events
// arrive, then converts them for callers.
func (d *Deck) apply(events []domain.Event) []dto.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]dto.Event, 0, len(events))
	for _, ev := range events {
		switch e := ev.(type) {
		case domain.DecidedEvent:
			id := d.coupleID(e.Index)
			d.RecordVerdict(id, e.Decision.String())
			out = append(out, dto.Event{Kind: dto.EventDecided, Index: e.Index, Decision: e.Decision.String(), CoupleID: id})
		case domain.CommittedEvent:
			id := d.coupleID(e.Index)
			_ = d.OpenBacking(id)
			out = append(out, dto.Event{Kind: dto.EventCommitted, Index: e.Index, Decision: dto.DecisionCommit, CoupleID: id})
		case domain.AdvancedEvent:
			out = append(out, dto.Event{Kind: dto.EventAdvanced, Index: e.Index, CoupleID: d.coupleID(e.Index)})
		case domain.ExhaustedEvent:
			out = append(out, dto.Event{Kind: dto.EventExhausted, Index: e.Index, CoupleID: d.coupleID(e.Index)})
		}
	}
	return out
}

func (d *Deck) at(i int) (couplesdto.CoupleOutput, bool) {
	if i < 0 || i >= len(d.couples) {
		return couplesdto.CoupleOutput{}, false
	}
	return d.couples[i], true
}

func (d *Deck) coupleID(i int) string {
	c, _ := d.at(i)
	return c.ID
}

func parseDecision(s string) domain.Decision {
	switch s {
	case dto.DecisionCommit:
		return domain.DecisionCommit
	case dto.DecisionReject:
		return domain.DecisionReject
	case dto.DecisionSkip:
		return domain.DecisionSkip
	default:
		return domain.DecisionNone
	}
}

func toSample(s domain.DragSample) dto.Sample {
	return dto.Sample{Active: s.Active, DX: s.DX, DY: s.DY, VX: s.VX, VY: s.VY}
}

func toViewport(vp dto.Viewport) domain.Viewport {
	return domain.Viewport{Width: vp.Width, Height: vp.Height}
}
