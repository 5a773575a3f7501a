package domain

import (
	"testing"
	"time"
)

func TestRankedOrdersWithoutMutating(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := Board{
		TopBackers: []Backer{{Username: "b", TotalBacked: 10}, {Username: "a", TotalBacked: 30}, {Username: "c", TotalBacked: 20}},
		RecentWins: []Win{{Username: "old", At: now.Add(-time.Hour)}, {Username: "new", At: now}},
	}
	r := b.Ranked()
	if r.TopBackers[0].Username != "a" || r.TopBackers[2].Username != "b" {
		t.Fatalf("unexpected backer order %+v", r.TopBackers)
	}
	if r.RecentWins[0].Username != "new" {
		t.Fatalf("unexpected win order %+v", r.RecentWins)
	}
	if b.TopBackers[0].Username != "b" {
		t.Fatalf("ranking mutated the source board")
	}
}

func TestValidateRejectsBadRates(t *testing.T) {
	t.Parallel()
	if err := (Board{TopBackers: []Backer{{Username: "x", SuccessRate: 1.2}}}).Validate(); err == nil {
		t.Fatalf("expected out of range error")
	}
	if err := (Board{TopBackers: []Backer{{Address: "0x1"}}}).Validate(); err == nil {
		t.Fatalf("expected missing username error")
	}
}
