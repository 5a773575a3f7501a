package money

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := map[int64]string{
		0:          "$0.00",
		500000:     "$0.50",
		1000000:    "$1.00",
		1500000:    "$1.50",
		2450000000: "$2450.00",
	}
	for amount, want := range cases {
		if got := Format(amount); got != want {
			t.Fatalf("Format(%d) = %q, want %q", amount, got, want)
		}
	}
	if got := FormatWithUnit(OneUSDC); got != "$1.00 USDC" {
		t.Fatalf("unexpected unit format %q", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	got, err := Parse("$1.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 1500000 {
		t.Fatalf("expected 1500000, got %d", got)
	}
	if _, err := Parse("-1"); err == nil {
		t.Fatalf("expected negative amount error")
	}
	if _, err := Parse("0.0000001"); err == nil {
		t.Fatalf("expected precision error")
	}
	if _, err := Parse("abc"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyMultiplier(t *testing.T) {
	t.Parallel()
	if got := ApplyMultiplier(1000000, 150); got != 1500000 {
		t.Fatalf("expected 1.5x payout, got %d", got)
	}
	if got := ApplyMultiplier(500000, 100); got != 500000 {
		t.Fatalf("expected 1.0x payout, got %d", got)
	}
}
