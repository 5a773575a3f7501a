package in

import (
	"context"

	"chemlab/internal/modules/leaderboard/dto"
)

type Usecase interface {
	Board(ctx context.Context) (dto.BoardOutput, error)
}
