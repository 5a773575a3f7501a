package out

import (
	"context"

	"chemlab/internal/modules/leaderboard/domain"
)

type BoardSource interface {
	LoadBoard(ctx context.Context) (domain.Board, error)
}
