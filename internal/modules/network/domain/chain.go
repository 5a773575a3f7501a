package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Chain struct {
	ID      int64
	Name    string
	Mainnet bool
}

var (
	BaseMainnet = Chain{ID: 8453, Name: "Base", Mainnet: true}
	BaseSepolia = Chain{ID: 84532, Name: "Base Sepolia"}
)

// TargetFor picks the testnet for development builds.
func TargetFor(development bool) Chain {
	if development {
		return BaseSepolia
	}
	return BaseMainnet
}

// ParseChainID accepts decimal ids and 0x-prefixed hex ids as wallets
// report them.
func ParseChainID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		id, err := strconv.ParseInt(raw[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parse chain id %q: %w", raw, err)
		}
		return id, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse chain id %q: %w", raw, err)
	}
	return id, nil
}

// Status compares the wallet's chain with the target chain. A wallet that
// reports no chain is never on the correct network.
type Status struct {
	Current   int64
	Connected bool
	Target    Chain
}

func Check(current int64, connected bool, development bool) Status {
	return Status{Current: current, Connected: connected, Target: TargetFor(development)}
}

func (s Status) Correct() bool {
	return s.Connected && s.Current == s.Target.ID
}

func (s Status) Instructions() string {
	return fmt.Sprintf("Please switch to %s (Chain ID: %d) in your wallet settings to use this app on the Base ecosystem.", s.Target.Name, s.Target.ID)
}

// Label is the short network badge, e.g. "Base Mainnet".
func (s Status) Label() string {
	if s.Target.Mainnet {
		return "Base Mainnet"
	}
	return "Base Sepolia"
}
