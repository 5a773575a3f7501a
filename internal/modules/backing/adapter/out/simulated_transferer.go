package out

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chemlab/internal/platform/money"
)

// SimulatedTransferer stands in for a wallet transfer: it waits for the
// configured delay and always succeeds unless ctx ends first.
type SimulatedTransferer struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewSimulatedTransferer(delay time.Duration, logger *zap.Logger) *SimulatedTransferer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedTransferer{delay: delay, logger: logger}
}

func (t *SimulatedTransferer) Transfer(ctx context.Context, address string, amount int64) error {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	t.logger.Info("stake transferred", zap.String("address", address), zap.String("amount", money.FormatWithUnit(amount)))
	return nil
}
