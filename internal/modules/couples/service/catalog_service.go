package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"chemlab/internal/modules/couples/domain"
	couplesout "chemlab/internal/modules/couples/port/out"
	apperrors "chemlab/internal/platform/errors"
)

type tallyKey struct {
	coupleID    string
	milestoneID int
}

type tallyState struct {
	backed  int64
	backers map[string]struct{}
}

// CatalogService serves the loaded couples and keeps running stake totals
// per milestone. The loaded records are never mutated; totals are merged
// into the copies handed out.
type CatalogService struct {
	source couplesout.CoupleSource

	mu      sync.RWMutex
	loaded  bool
	couples []domain.Couple
	tallies map[tallyKey]*tallyState
}

func NewCatalogService(source couplesout.CoupleSource) *CatalogService {
	return &CatalogService{source: source, tallies: map[tallyKey]*tallyState{}}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Couple, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Couple, 0, len(s.couples))
	for _, c := range s.couples {
		out = append(out, s.withTallies(c))
	}
	return out, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Couple, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Couple{}, fmt.Errorf("%w: couple id is required", apperrors.ErrInvalidInput)
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Couple{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.couples {
		if c.ID == id {
			return s.withTallies(c), nil
		}
	}
	return domain.Couple{}, fmt.Errorf("couple %s: %w", id, apperrors.ErrNotFound)
}

// Record adds a stake to a milestone's running totals. Backers are counted
// once per address.
func (s *CatalogService) Record(ctx context.Context, address, coupleID string, milestoneID int, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	couple, err := s.Get(ctx, coupleID)
	if err != nil {
		return err
	}
	if _, ok := couple.Milestone(milestoneID); !ok {
		return fmt.Errorf("milestone %d of couple %s: %w", milestoneID, coupleID, apperrors.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := tallyKey{coupleID: coupleID, milestoneID: milestoneID}
	state, ok := s.tallies[key]
	if !ok {
		state = &tallyState{backers: map[string]struct{}{}}
		s.tallies[key] = state
	}
	state.backed += amount
	state.backers[strings.ToLower(address)] = struct{}{}
	return nil
}

func (s *CatalogService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	couples, err := s.source.LoadCouples(ctx)
	if err != nil {
		return fmt.Errorf("load couples: %w", err)
	}
	for _, c := range couples {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.couples = couples
		s.loaded = true
	}
	return nil
}

func (s *CatalogService) withTallies(c domain.Couple) domain.Couple {
	milestones := make([]domain.Milestone, len(c.Milestones))
	for i, m := range c.Milestones {
		if state, ok := s.tallies[tallyKey{coupleID: c.ID, milestoneID: m.ID}]; ok {
			m.TotalBacked += state.backed
			m.TotalBackers += len(state.backers)
		}
		milestones[i] = m
	}
	c.Milestones = milestones
	return c
}
