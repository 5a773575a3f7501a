package domain

import (
	"fmt"
	"sort"
	"time"
)

type Backer struct {
	Address      string
	Username     string
	TotalBacked  int64
	TotalWon     int64
	SuccessRate  float64
	BackingCount int
}

type Win struct {
	Username    string
	CoupleNames string
	Milestone   string
	Winnings    int64
	At          time.Time
}

type CommunityStats struct {
	TotalCouplesSupported int
	TotalUSDCBacked       int64
	TotalUSDCWon          int64
	AverageSuccessRate    float64
	ActiveBackers         int
}

type Board struct {
	TopBackers []Backer
	RecentWins []Win
	Community  CommunityStats
}

func (b Board) Validate() error {
	for _, backer := range b.TopBackers {
		if backer.Username == "" {
			return fmt.Errorf("backer %s has no username", backer.Address)
		}
		if backer.SuccessRate < 0 || backer.SuccessRate > 1 {
			return fmt.Errorf("backer %s success rate %v out of range", backer.Username, backer.SuccessRate)
		}
	}
	if b.Community.AverageSuccessRate < 0 || b.Community.AverageSuccessRate > 1 {
		return fmt.Errorf("community success rate %v out of range", b.Community.AverageSuccessRate)
	}
	return nil
}

// Ranked orders backers by amount backed and wins by recency, newest first.
func (b Board) Ranked() Board {
	out := Board{
		TopBackers: append([]Backer(nil), b.TopBackers...),
		RecentWins: append([]Win(nil), b.RecentWins...),
		Community:  b.Community,
	}
	sort.SliceStable(out.TopBackers, func(i, j int) bool {
		return out.TopBackers[i].TotalBacked > out.TopBackers[j].TotalBacked
	})
	sort.SliceStable(out.RecentWins, func(i, j int) bool {
		return out.RecentWins[i].At.After(out.RecentWins[j].At)
	})
	return out
}
