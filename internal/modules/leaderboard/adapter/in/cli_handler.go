package in

import (
	"context"

	"chemlab/internal/modules/leaderboard/dto"
	leaderboardin "chemlab/internal/modules/leaderboard/port/in"
)

type CLIHandler struct {
	usecase leaderboardin.Usecase
}

func NewCLIHandler(usecase leaderboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Board(ctx context.Context) (dto.BoardOutput, error) {
	return h.usecase.Board(ctx)
}
