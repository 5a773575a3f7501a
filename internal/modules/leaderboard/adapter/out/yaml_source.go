package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chemlab/internal/modules/leaderboard/domain"
	leaderboardout "chemlab/internal/modules/leaderboard/port/out"
	"chemlab/internal/platform/clock"
)

//go:embed fixtures/leaderboard.yaml
var embeddedBoard []byte

type boardFile struct {
	SchemaVersion int `yaml:"schema_version"`
	TopBackers    []struct {
		Address      string  `yaml:"address"`
		Username     string  `yaml:"username"`
		TotalBacked  int64   `yaml:"total_backed"`
		TotalWon     int64   `yaml:"total_won"`
		SuccessRate  float64 `yaml:"success_rate"`
		BackingCount int     `yaml:"backing_count"`
	} `yaml:"top_backers"`
	RecentWins []struct {
		Username    string `yaml:"username"`
		CoupleNames string `yaml:"couple_names"`
		Milestone   string `yaml:"milestone"`
		Winnings    int64  `yaml:"winnings"`
		MinutesAgo  int    `yaml:"minutes_ago"`
	} `yaml:"recent_wins"`
	Community struct {
		TotalCouplesSupported int     `yaml:"total_couples_supported"`
		TotalUSDCBacked       int64   `yaml:"total_usdc_backed"`
		TotalUSDCWon          int64   `yaml:"total_usdc_won"`
		AverageSuccessRate    float64 `yaml:"average_success_rate"`
		ActiveBackers         int     `yaml:"active_backers"`
	} `yaml:"community_stats"`
}

// YAMLBoardSource decodes the leaderboard fixture, dating wins relative to
// the clock.
type YAMLBoardSource struct {
	clock clock.Clock
	read  func() ([]byte, error)
}

func NewEmbeddedBoardSource(clk clock.Clock) leaderboardout.BoardSource {
	return &YAMLBoardSource{clock: clk, read: func() ([]byte, error) { return embeddedBoard, nil }}
}

func NewFileBoardSource(clk clock.Clock, path string) leaderboardout.BoardSource {
	return &YAMLBoardSource{clock: clk, read: func() ([]byte, error) { return os.ReadFile(path) }}
}

func (s *YAMLBoardSource) LoadBoard(_ context.Context) (domain.Board, error) {
	raw, err := s.read()
	if err != nil {
		return domain.Board{}, fmt.Errorf("read leaderboard fixture: %w", err)
	}
	file := boardFile{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Board{}, fmt.Errorf("decode leaderboard fixture: %w", err)
	}
	if file.SchemaVersion != 1 {
		return domain.Board{}, fmt.Errorf("unsupported leaderboard schema version %d", file.SchemaVersion)
	}
	now := s.clock.Now()
	board := domain.Board{
		Community: domain.CommunityStats{
			TotalCouplesSupported: file.Community.TotalCouplesSupported,
			TotalUSDCBacked:       file.Community.TotalUSDCBacked,
			TotalUSDCWon:          file.Community.TotalUSDCWon,
			AverageSuccessRate:    file.Community.AverageSuccessRate,
			ActiveBackers:         file.Community.ActiveBackers,
		},
	}
	for _, b := range file.TopBackers {
		board.TopBackers = append(board.TopBackers, domain.Backer{
			Address:      b.Address,
			Username:     b.Username,
			TotalBacked:  b.TotalBacked,
			TotalWon:     b.TotalWon,
			SuccessRate:  b.SuccessRate,
			BackingCount: b.BackingCount,
		})
	}
	for _, w := range file.RecentWins {
		board.RecentWins = append(board.RecentWins, domain.Win{
			Username:    w.Username,
			CoupleNames: w.CoupleNames,
			Milestone:   w.Milestone,
			Winnings:    w.Winnings,
			At:          now.Add(-time.Duration(w.MinutesAgo) * time.Minute),
		})
	}
	return board, nil
}
