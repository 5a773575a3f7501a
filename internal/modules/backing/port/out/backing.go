package out

import (
	"context"

	"chemlab/internal/modules/backing/domain"
)

// Ledger persists backing records. SaveAll is all-or-nothing.
type Ledger interface {
	SaveAll(ctx context.Context, backings []domain.Backing) error
	ListByAddress(ctx context.Context, address string) ([]domain.Backing, error)
}

// StakeTransferer moves the stake from the user's wallet.
type StakeTransferer interface {
	Transfer(ctx context.Context, address string, amount int64) error
}

type Catalog interface {
	Terms(ctx context.Context, coupleID string) (domain.CoupleTerms, error)
}

// Tallier adds recorded stakes to the milestone totals.
type Tallier interface {
	Tally(ctx context.Context, backing domain.Backing) error
}
