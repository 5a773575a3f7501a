package service

import (
	"context"
	"fmt"
	"sync"

	"chemlab/internal/modules/leaderboard/domain"
	leaderboardout "chemlab/internal/modules/leaderboard/port/out"
	apperrors "chemlab/internal/platform/errors"
)

// BoardService loads the board once and serves ranked copies.
type BoardService struct {
	source leaderboardout.BoardSource

	mu     sync.Mutex
	loaded bool
	board  domain.Board
}

func NewBoardService(source leaderboardout.BoardSource) *BoardService {
	return &BoardService{source: source}
}

func (s *BoardService) Board(ctx context.Context) (domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		board, err := s.source.LoadBoard(ctx)
		if err != nil {
			return domain.Board{}, fmt.Errorf("%w: load leaderboard: %v", apperrors.ErrFetchFailed, err)
		}
		if err := board.Validate(); err != nil {
			return domain.Board{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		s.board = board
		s.loaded = true
	}
	return s.board.Ranked(), nil
}
