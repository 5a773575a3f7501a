package usecase

import (
	"context"
	"strings"
	"time"

	"chemlab/internal/modules/couples/domain"
	"chemlab/internal/modules/couples/dto"
	couplesin "chemlab/internal/modules/couples/port/in"
	"chemlab/internal/modules/couples/service"
	"chemlab/internal/platform/clock"
)

type Interactor struct {
	svc   *service.CatalogService
	clock clock.Clock
}

func NewInteractor(svc *service.CatalogService, clk clock.Clock) couplesin.Usecase {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Interactor{svc: svc, clock: clk}
}

func (i *Interactor) ListCouples(ctx context.Context) (dto.ListOutput, error) {
	couples, err := i.svc.List(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Couples: make([]dto.CoupleOutput, 0, len(couples)), Total: len(couples)}
	for _, c := range couples {
		out.Couples = append(out.Couples, toCoupleOutput(c, i.clock.Now()))
	}
	return out, nil
}

func (i *Interactor) GetCouple(ctx context.Context, id string) (dto.CoupleOutput, error) {
	c, err := i.svc.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.CoupleOutput{}, err
	}
	return toCoupleOutput(c, i.clock.Now()), nil
}

func (i *Interactor) RecordBacking(ctx context.Context, input dto.TallyInput) error {
	return i.svc.Record(ctx, input.Address, input.CoupleID, input.MilestoneID, input.Amount)
}

func toCoupleOutput(c domain.Couple, now time.Time) dto.CoupleOutput {
	out := dto.CoupleOutput{
		ID:             c.ID,
		Partner1:       toPartnerOutput(c.Partner1),
		Partner2:       toPartnerOutput(c.Partner2),
		MatchedAt:      c.MatchedAt,
		MatchedAgo:     c.MatchedAgo(now),
		ChemistryScore: c.ChemistryScore,
		ChemistryBand:  string(domain.BandFor(c.ChemistryScore)),
		Backstory:      c.Backstory,
		Location:       c.Location,
		Milestones:     make([]dto.MilestoneOutput, 0, len(c.Milestones)),
	}
	for _, m := range c.Milestones {
		out.Milestones = append(out.Milestones, dto.MilestoneOutput{
			ID:               m.ID,
			Type:             string(m.Kind),
			Title:            m.Title,
			Description:      m.Description,
			Duration:         string(m.Duration),
			Multiplier:       m.Multiplier,
			Deadline:         m.Deadline,
			TimeRemaining:    m.TimeRemaining(now),
			MinBackingAmount: m.MinStake,
			TotalBacked:      m.TotalBacked,
			TotalBackers:     m.TotalBackers,
			Resolved:         m.Resolved,
			Successful:       m.Successful,
		})
	}
	return out
}

func toPartnerOutput(p domain.Partner) dto.PartnerOutput {
	out := dto.PartnerOutput{
		Name:      p.Name,
		Age:       p.Age,
		Bio:       p.Bio,
		Avatar:    p.Avatar,
		Interests: p.Interests,
	}
	out.DisplayName, _ = p.Identity()
	if p.Wallet != nil {
		out.WalletAddress = p.Wallet.Address
		out.Basename = p.Wallet.Basename
	}
	return out
}
