package domain

import (
	"fmt"

	"chemlab/internal/platform/money"
)

// Selection maps chosen milestones to stakes, in the order they were picked.
type Selection struct {
	order  []int
	stakes map[int]int64
	terms  map[int]Terms
}

type Entry struct {
	Terms Terms
	Stake int64
}

func NewSelection() Selection {
	return Selection{stakes: map[int]int64{}, terms: map[int]Terms{}}
}

// Toggle adds the milestone at its minimum stake, or removes it when it is
// already selected. It reports whether the milestone is selected afterwards.
func (s *Selection) Toggle(t Terms) bool {
	if s.stakes == nil {
		*s = NewSelection()
	}
	if _, ok := s.stakes[t.MilestoneID]; ok {
		delete(s.stakes, t.MilestoneID)
		delete(s.terms, t.MilestoneID)
		for i, id := range s.order {
			if id == t.MilestoneID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.order = append(s.order, t.MilestoneID)
	s.stakes[t.MilestoneID] = t.MinStake
	s.terms[t.MilestoneID] = t
	return true
}

func (s Selection) Selected(milestoneID int) bool {
	_, ok := s.stakes[milestoneID]
	return ok
}

func (s Selection) Stake(milestoneID int) (int64, bool) {
	v, ok := s.stakes[milestoneID]
	return v, ok
}

// SetStake changes the stake of a selected milestone.
func (s *Selection) SetStake(milestoneID int, amount int64) error {
	t, ok := s.terms[milestoneID]
	if !ok {
		return fmt.Errorf("%w: milestone %d is not selected", ErrInvalidItems, milestoneID)
	}
	if amount < t.MinStake {
		return fmt.Errorf("%w: milestone %d needs at least %d", ErrBelowMinimum, milestoneID, t.MinStake)
	}
	s.stakes[milestoneID] = amount
	return nil
}

func (s Selection) Len() int {
	return len(s.order)
}

func (s Selection) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entry{Terms: s.terms[id], Stake: s.stakes[id]})
	}
	return out
}

func (s Selection) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Item{MilestoneID: id, Amount: s.stakes[id]})
	}
	return out
}

func (s Selection) TotalStake() int64 {
	var total int64
	for _, v := range s.stakes {
		total += v
	}
	return total
}

// PotentialWinnings is the recorded payout of the selection (flat 1:1).
func (s Selection) PotentialWinnings() int64 {
	return s.TotalStake()
}

// ProjectedPayout applies each milestone's multiplier. Display only.
func (s Selection) ProjectedPayout() int64 {
	var total int64
	for id, stake := range s.stakes {
		total += money.ApplyMultiplier(stake, s.terms[id].Multiplier)
	}
	return total
}
