package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func sampleTerms() CoupleTerms {
	return CoupleTerms{
		CoupleID: "1",
		Names:    "Emma & Jake",
		Milestones: []Terms{
			{MilestoneID: 1, Title: "50 messages", MinStake: 1_000_000, Multiplier: 150},
			{MilestoneID: 2, Title: "First date", MinStake: 5_000_000, Multiplier: 250},
			{MilestoneID: 3, Title: "Three dates", MinStake: 10_000_000, Multiplier: 400, Resolved: true},
		},
	}
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("b-%d", n)
	}
}

func TestSelectionToggleTwiceRestores(t *testing.T) {
	t.Parallel()
	terms := sampleTerms()
	sel := NewSelection()
	if !sel.Toggle(terms.Milestones[0]) {
		t.Fatalf("expected milestone to be selected")
	}
	if got := sel.TotalStake(); got != 1_000_000 {
		t.Fatalf("expected min stake on toggle, got %d", got)
	}
	if sel.Toggle(terms.Milestones[0]) {
		t.Fatalf("expected milestone to be removed")
	}
	if sel.Len() != 0 || sel.TotalStake() != 0 {
		t.Fatalf("expected empty selection, got %+v", sel.Entries())
	}
}

func TestSelectionTotalsAndPayout(t *testing.T) {
	t.Parallel()
	terms := sampleTerms()
	sel := NewSelection()
	sel.Toggle(terms.Milestones[1])
	sel.Toggle(terms.Milestones[0])
	if got := sel.TotalStake(); got != 6_000_000 {
		t.Fatalf("total stake: got %d", got)
	}
	if sel.PotentialWinnings() != sel.TotalStake() {
		t.Fatalf("potential winnings must equal total stake")
	}
	// 1.00 * 1.5 + 5.00 * 2.5
	if got := sel.ProjectedPayout(); got != 14_000_000 {
		t.Fatalf("projected payout: got %d", got)
	}
	entries := sel.Entries()
	if len(entries) != 2 || entries[0].Terms.MilestoneID != 2 || entries[1].Terms.MilestoneID != 1 {
		t.Fatalf("entries should keep pick order: %+v", entries)
	}
}

func TestSelectionSetStakeRejectsBelowMinimum(t *testing.T) {
	t.Parallel()
	terms := sampleTerms()
	sel := NewSelection()
	sel.Toggle(terms.Milestones[1])
	if err := sel.SetStake(2, 4_999_999); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
	if err := sel.SetStake(2, 7_500_000); err != nil {
		t.Fatalf("set stake: %v", err)
	}
	if got, _ := sel.Stake(2); got != 7_500_000 {
		t.Fatalf("stake not updated: %d", got)
	}
	if err := sel.SetStake(1, 2_000_000); !errors.Is(err, ErrInvalidItems) {
		t.Fatalf("expected unselected milestone to be rejected, got %v", err)
	}
}

func TestFlowBeginGuards(t *testing.T) {
	t.Parallel()
	flow := NewFlow(sampleTerms())
	if flow.CanSubmit() {
		t.Fatalf("empty flow must not be submittable")
	}
	if _, err := flow.Begin(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
	if _, err := flow.Toggle(1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	items, err := flow.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if len(items) != 1 || items[0].Amount != 1_000_000 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if _, err := flow.Begin(); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
	if _, err := flow.Toggle(2); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("toggle while pending should fail, got %v", err)
	}
}

func TestFlowRejectsResolvedMilestone(t *testing.T) {
	t.Parallel()
	flow := NewFlow(sampleTerms())
	selected, err := flow.Toggle(3)
	if !errors.Is(err, ErrInvalidItems) {
		t.Fatalf("expected ErrInvalidItems for a resolved milestone, got %v", err)
	}
	if selected || flow.Selection().Len() != 0 {
		t.Fatalf("resolved milestone must not be selected")
	}
	if _, err := flow.Toggle(1); err != nil {
		t.Fatalf("open milestone should still toggle: %v", err)
	}
}

func TestFlowFailKeepsSelection(t *testing.T) {
	t.Parallel()
	flow := NewFlow(sampleTerms())
	_, _ = flow.Toggle(1)
	_, _ = flow.Toggle(2)
	if _, err := flow.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	boom := errors.New("transfer rejected")
	flow.Fail(boom)
	if flow.Pending() {
		t.Fatalf("fail must clear pending")
	}
	if !errors.Is(flow.LastError(), boom) {
		t.Fatalf("last error not kept: %v", flow.LastError())
	}
	if flow.Selection().Len() != 2 || !flow.CanSubmit() {
		t.Fatalf("selection should survive a failure")
	}
}

func TestFlowCompleteBuildsOneRecordPerMilestone(t *testing.T) {
	t.Parallel()
	flow := NewFlow(sampleTerms())
	_, _ = flow.Toggle(1)
	_, _ = flow.Toggle(2)
	if _, err := flow.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := flow.Complete("0xABCdef", at, counterIDs())
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Address != "0xabcdef" || r.CoupleID != "1" || !r.CreatedAt.Equal(at) {
			t.Fatalf("unexpected record: %+v", r)
		}
		if r.PotentialWinnings != r.Amount {
			t.Fatalf("potential winnings should be 1:1, got %+v", r)
		}
	}
	if flow.CanSubmit() || !flow.Completed() {
		t.Fatalf("completed flow must not be submittable again")
	}
}

func TestValidateItems(t *testing.T) {
	t.Parallel()
	terms := sampleTerms()
	cases := []struct {
		name  string
		items []Item
		want  error
	}{
		{name: "empty", items: nil, want: ErrEmptySelection},
		{name: "unknown milestone", items: []Item{{MilestoneID: 9, Amount: 1_000_000}}, want: ErrUnknownMilestone},
		{name: "below minimum", items: []Item{{MilestoneID: 2, Amount: 1_000_000}}, want: ErrBelowMinimum},
		{name: "duplicate", items: []Item{{MilestoneID: 1, Amount: 1_000_000}, {MilestoneID: 1, Amount: 2_000_000}}, want: ErrInvalidItems},
		{name: "resolved", items: []Item{{MilestoneID: 3, Amount: 10_000_000}}, want: ErrInvalidItems},
		{name: "ok", items: []Item{{MilestoneID: 1, Amount: 1_000_000}, {MilestoneID: 2, Amount: 5_000_000}}},
	}
	for _, tc := range cases {
		err := ValidateItems(terms, tc.items)
		if tc.want == nil && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
