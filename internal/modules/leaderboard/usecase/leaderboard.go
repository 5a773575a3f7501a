package usecase

import (
	"context"

	"chemlab/internal/modules/leaderboard/dto"
	leaderboardin "chemlab/internal/modules/leaderboard/port/in"
	"chemlab/internal/modules/leaderboard/service"
)

type Interactor struct {
	svc *service.BoardService
}

func NewInteractor(svc *service.BoardService) leaderboardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Board(ctx context.Context) (dto.BoardOutput, error) {
	board, err := i.svc.Board(ctx)
	if err != nil {
		return dto.BoardOutput{}, err
	}
	out := dto.BoardOutput{
		TopBackers: make([]dto.BackerOutput, 0, len(board.TopBackers)),
		RecentWins: make([]dto.WinOutput, 0, len(board.RecentWins)),
		CommunityStats: dto.CommunityStatsOutput{
			TotalCouplesSupported: board.Community.TotalCouplesSupported,
			TotalUSDCBacked:       board.Community.TotalUSDCBacked,
			TotalUSDCWon:          board.Community.TotalUSDCWon,
			AverageSuccessRate:    board.Community.AverageSuccessRate,
			ActiveBackers:         board.Community.ActiveBackers,
		},
	}
	for _, b := range board.TopBackers {
		out.TopBackers = append(out.TopBackers, dto.BackerOutput{
			Address:      b.Address,
			Username:     b.Username,
			TotalBacked:  b.TotalBacked,
			TotalWon:     b.TotalWon,
			SuccessRate:  b.SuccessRate,
			BackingCount: b.BackingCount,
		})
	}
	for _, w := range board.RecentWins {
		out.RecentWins = append(out.RecentWins, dto.WinOutput{
			Username:    w.Username,
			CoupleNames: w.CoupleNames,
			Milestone:   w.Milestone,
			Winnings:    w.Winnings,
			Timestamp:   w.At,
		})
	}
	return out, nil
}
