package domain

import (
	"fmt"
	"time"
)

// Flow is the backing workflow for one committed couple: pick milestones,
// then submit once. A failed submission keeps the selection for a retry.
type Flow struct {
	couple    CoupleTerms
	selection Selection
	pending   bool
	completed bool
	lastErr   error
}

func NewFlow(couple CoupleTerms) *Flow {
	return &Flow{couple: couple, selection: NewSelection()}
}

func (f *Flow) Couple() CoupleTerms {
	return f.couple
}

func (f *Flow) Selection() Selection {
	return f.selection
}

// Toggle flips the milestone with the given id. Resolved milestones cannot
// be picked, and toggling is locked while a submission is pending.
func (f *Flow) Toggle(milestoneID int) (bool, error) {
	if f.pending {
		return f.selection.Selected(milestoneID), ErrSubmissionInFlight
	}
	t, ok := f.couple.Terms(milestoneID)
	if !ok {
		return false, fmt.Errorf("%w: milestone %d", ErrUnknownMilestone, milestoneID)
	}
	if t.Resolved && !f.selection.Selected(milestoneID) {
		return false, fmt.Errorf("%w: milestone %d is already resolved", ErrInvalidItems, milestoneID)
	}
	return f.selection.Toggle(t), nil
}

func (f *Flow) SetStake(milestoneID int, amount int64) error {
	if f.pending {
		return ErrSubmissionInFlight
	}
	return f.selection.SetStake(milestoneID, amount)
}

func (f *Flow) CanSubmit() bool {
	return !f.pending && !f.completed && f.selection.Len() > 0
}

func (f *Flow) Pending() bool {
	return f.pending
}

func (f *Flow) Completed() bool {
	return f.completed
}

func (f *Flow) LastError() error {
	return f.lastErr
}

// Begin enters the pending state and returns the items to submit.
func (f *Flow) Begin() ([]Item, error) {
	if f.pending {
		return nil, ErrSubmissionInFlight
	}
	if f.selection.Len() == 0 {
		return nil, ErrEmptySelection
	}
	f.pending = true
	f.lastErr = nil
	return f.selection.Items(), nil
}

// Complete ends a pending submission and builds one record per selected
// milestone.
func (f *Flow) Complete(address string, at time.Time, newID func() string) []Backing {
	f.pending = false
	f.completed = true
	return NewBackings(address, f.couple.CoupleID, f.selection.Items(), at, newID)
}

func (f *Flow) Fail(err error) {
	f.pending = false
	f.lastErr = err
}
