package domain

import "testing"

func TestCheckTargetsByEnvironment(t *testing.T) {
	t.Parallel()
	dev := Check(84532, true, true)
	if !dev.Correct() || dev.Target != BaseSepolia || dev.Label() != "Base Sepolia" {
		t.Fatalf("unexpected dev status %+v", dev)
	}
	prod := Check(84532, true, false)
	if prod.Correct() || prod.Target != BaseMainnet || prod.Label() != "Base Mainnet" {
		t.Fatalf("unexpected prod status %+v", prod)
	}
	want := "Please switch to Base (Chain ID: 8453) in your wallet settings to use this app on the Base ecosystem."
	if prod.Instructions() != want {
		t.Fatalf("unexpected instructions %q", prod.Instructions())
	}
	if Check(0, false, true).Correct() {
		t.Fatalf("disconnected wallet must not be correct")
	}
}

func TestParseChainID(t *testing.T) {
	t.Parallel()
	for raw, want := range map[string]int64{"8453": 8453, "0x2105": 8453, "0X14A34": 84532, " 84532 ": 84532} {
		got, err := ParseChainID(raw)
		if err != nil || got != want {
			t.Fatalf("ParseChainID(%q) = %d, %v", raw, got, err)
		}
	}
	if _, err := ParseChainID("base"); err == nil {
		t.Fatalf("expected parse error")
	}
}
