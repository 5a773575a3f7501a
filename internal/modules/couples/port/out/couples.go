package out

import (
	"context"

	"chemlab/internal/modules/couples/domain"
)

// CoupleSource loads the candidate couples shown in the swipe stack.
type CoupleSource interface {
	LoadCouples(ctx context.Context) ([]domain.Couple, error)
}
