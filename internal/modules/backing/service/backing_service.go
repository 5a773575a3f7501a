package service

import (
	"context"
	"fmt"
	"strings"

	"chemlab/internal/modules/backing/domain"
	backingout "chemlab/internal/modules/backing/port/out"
	"chemlab/internal/platform/clock"
	apperrors "chemlab/internal/platform/errors"
	"chemlab/internal/platform/id"
	"chemlab/internal/platform/tx"

	"go.uber.org/zap"
)

type BackingService struct {
	catalog    backingout.Catalog
	ledger     backingout.Ledger
	transferer backingout.StakeTransferer
	tallier    backingout.Tallier
	tx         tx.Manager
	clock      clock.Clock
	ids        id.Generator
	logger     *zap.Logger
}

func NewBackingService(
	catalog backingout.Catalog,
	ledger backingout.Ledger,
	transferer backingout.StakeTransferer,
	tallier backingout.Tallier,
	txManager tx.Manager,
	clk clock.Clock,
	ids id.Generator,
	logger *zap.Logger,
) *BackingService {
	if txManager == nil {
		txManager = tx.NoopManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackingService{
		catalog:    catalog,
		ledger:     ledger,
		transferer: transferer,
		tallier:    tallier,
		tx:         txManager,
		clock:      clk,
		ids:        ids,
		logger:     logger,
	}
}

func (s *BackingService) Terms(ctx context.Context, coupleID string) (domain.CoupleTerms, error) {
	if strings.TrimSpace(coupleID) == "" {
		return domain.CoupleTerms{}, fmt.Errorf("%w: couple id is required", apperrors.ErrInvalidInput)
	}
	return s.catalog.Terms(ctx, coupleID)
}

// Submit transfers the total stake and then records one backing per item.
// Nothing is written when the transfer fails.
func (s *BackingService) Submit(ctx context.Context, address, coupleID string, items []domain.Item) ([]domain.Backing, error) {
	flow, err := s.replay(ctx, address, coupleID, items)
	if err != nil {
		return nil, err
	}
	if _, err := flow.Begin(); err != nil {
		return nil, err
	}
	total := flow.Selection().TotalStake()
	if err := s.transferer.Transfer(ctx, domain.NormalizeAddress(address), total); err != nil {
		flow.Fail(err)
		s.logger.Warn("stake transfer failed", zap.String("couple", coupleID), zap.Int64("amount", total), zap.Error(err))
		return nil, fmt.Errorf("%w: transfer: %v", apperrors.ErrSubmissionFailed, err)
	}
	records := flow.Complete(address, s.clock.Now(), s.ids.New)
	if err := s.persist(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Record stores stakes whose transfer already happened elsewhere.
func (s *BackingService) Record(ctx context.Context, address, coupleID string, items []domain.Item) ([]domain.Backing, error) {
	flow, err := s.replay(ctx, address, coupleID, items)
	if err != nil {
		return nil, err
	}
	if _, err := flow.Begin(); err != nil {
		return nil, err
	}
	records := flow.Complete(address, s.clock.Now(), s.ids.New)
	if err := s.persist(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *BackingService) List(ctx context.Context, address string) ([]domain.Backing, error) {
	address = domain.NormalizeAddress(address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", apperrors.ErrInvalidInput)
	}
	return s.ledger.ListByAddress(ctx, address)
}

// Claimable pairs unclaimed backings with their won milestones.
func (s *BackingService) Claimable(ctx context.Context, address string) ([]domain.Backing, map[string]domain.CoupleTerms, error) {
	backings, err := s.List(ctx, address)
	if err != nil {
		return nil, nil, err
	}
	terms := map[string]domain.CoupleTerms{}
	out := make([]domain.Backing, 0)
	for _, b := range backings {
		if b.Claimed {
			continue
		}
		couple, ok := terms[b.CoupleID]
		if !ok {
			couple, err = s.catalog.Terms(ctx, b.CoupleID)
			if err != nil {
				return nil, nil, err
			}
			terms[b.CoupleID] = couple
		}
		if t, ok := couple.Terms(b.MilestoneID); ok && t.Won() {
			out = append(out, b)
		}
	}
	return out, terms, nil
}

func (s *BackingService) replay(ctx context.Context, address, coupleID string, items []domain.Item) (*domain.Flow, error) {
	if domain.NormalizeAddress(address) == "" {
		return nil, fmt.Errorf("%w: address is required", apperrors.ErrInvalidInput)
	}
	terms, err := s.Terms(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateItems(terms, items); err != nil {
		return nil, err
	}
	flow := domain.NewFlow(terms)
	for _, item := range items {
		if _, err := flow.Toggle(item.MilestoneID); err != nil {
			return nil, err
		}
		if err := flow.SetStake(item.MilestoneID, item.Amount); err != nil {
			return nil, err
		}
	}
	return flow, nil
}

func (s *BackingService) persist(ctx context.Context, records []domain.Backing) error {
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		return s.ledger.SaveAll(ctx, records)
	})
	if err != nil {
		s.logger.Error("persist backings", zap.Int("count", len(records)), zap.Error(err))
		return fmt.Errorf("%w: save backings: %v", apperrors.ErrSubmissionFailed, err)
	}
	if s.tallier == nil {
		return nil
	}
	for _, b := range records {
		if err := s.tallier.Tally(ctx, b); err != nil {
			s.logger.Warn("tally backing", zap.String("backing", b.ID), zap.Error(err))
		}
	}
	return nil
}
