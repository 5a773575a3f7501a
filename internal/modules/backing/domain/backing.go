package domain

import (
	"fmt"
	"strings"
	"time"
)

// Backing is a user's recorded stake against one milestone of a couple.
type Backing struct {
	ID                string
	Address           string
	CoupleID          string
	MilestoneID       int
	Amount            int64
	PotentialWinnings int64
	CreatedAt         time.Time
	Claimed           bool
}

// Terms are the stake economics of a milestone as seen by the backing flow.
type Terms struct {
	MilestoneID int
	Title       string
	MinStake    int64
	Multiplier  int
	Deadline    time.Time
	Resolved    bool
	Successful  *bool
}

func (t Terms) Won() bool {
	return t.Resolved && t.Successful != nil && *t.Successful
}

// CoupleTerms lists the backable milestones of one couple.
type CoupleTerms struct {
	CoupleID   string
	Names      string
	Milestones []Terms
}

func (c CoupleTerms) Terms(milestoneID int) (Terms, bool) {
	for _, t := range c.Milestones {
		if t.MilestoneID == milestoneID {
			return t, true
		}
	}
	return Terms{}, false
}

// Item is one milestone stake inside a submission.
type Item struct {
	MilestoneID int
	Amount      int64
}

// NormalizeAddress lower-cases and trims an account address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NewBackings builds one record per item. Potential winnings pay out 1:1.
func NewBackings(address, coupleID string, items []Item, at time.Time, newID func() string) []Backing {
	out := make([]Backing, 0, len(items))
	for _, item := range items {
		out = append(out, Backing{
			ID:                newID(),
			Address:           NormalizeAddress(address),
			CoupleID:          coupleID,
			MilestoneID:       item.MilestoneID,
			Amount:            item.Amount,
			PotentialWinnings: item.Amount,
			CreatedAt:         at,
		})
	}
	return out
}

// ValidateItems checks every item against the couple's terms.
func ValidateItems(terms CoupleTerms, items []Item) error {
	if len(items) == 0 {
		return ErrEmptySelection
	}
	seen := map[int]struct{}{}
	for _, item := range items {
		t, ok := terms.Terms(item.MilestoneID)
		if !ok {
			return fmt.Errorf("%w: milestone %d of couple %s", ErrUnknownMilestone, item.MilestoneID, terms.CoupleID)
		}
		if _, dup := seen[item.MilestoneID]; dup {
			return fmt.Errorf("%w: milestone %d listed twice", ErrInvalidItems, item.MilestoneID)
		}
		seen[item.MilestoneID] = struct{}{}
		if t.Resolved {
			return fmt.Errorf("%w: milestone %d is already resolved", ErrInvalidItems, item.MilestoneID)
		}
		if item.Amount < t.MinStake {
			return fmt.Errorf("%w: milestone %d needs at least %d, got %d", ErrBelowMinimum, item.MilestoneID, t.MinStake, item.Amount)
		}
	}
	return nil
}
