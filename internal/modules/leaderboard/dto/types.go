package dto

import "time"

type BackerOutput struct {
	Address      string  `json:"address"`
	Username     string  `json:"username"`
	TotalBacked  int64   `json:"totalBacked"`
	TotalWon     int64   `json:"totalWon"`
	SuccessRate  float64 `json:"successRate"`
	BackingCount int     `json:"backingCount"`
}

type WinOutput struct {
	Username    string    `json:"username"`
	CoupleNames string    `json:"coupleNames"`
	Milestone   string    `json:"milestone"`
	Winnings    int64     `json:"winnings"`
	Timestamp   time.Time `json:"timestamp"`
}

type CommunityStatsOutput struct {
	TotalCouplesSupported int     `json:"totalCouplesSupported"`
	TotalUSDCBacked       int64   `json:"totalUSDCBacked"`
	TotalUSDCWon          int64   `json:"totalUSDCWon"`
	AverageSuccessRate    float64 `json:"averageSuccessRate"`
	ActiveBackers         int     `json:"activeBakers"`
}

type BoardOutput struct {
	TopBackers     []BackerOutput       `json:"topBackers"`
	RecentWins     []WinOutput          `json:"recentWins"`
	CommunityStats CommunityStatsOutput `json:"communityStats"`
}
