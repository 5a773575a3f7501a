package out

import (
	"context"

	"chemlab/internal/modules/backing/domain"
	backingout "chemlab/internal/modules/backing/port/out"
	couplesdto "chemlab/internal/modules/couples/dto"
	couplesin "chemlab/internal/modules/couples/port/in"
)

type coupleGetter interface {
	GetCouple(ctx context.Context, id string) (couplesdto.CoupleOutput, error)
}

// CouplesCatalogAdapter reads milestone terms from the couples module, in
// process or through its API client.
type CouplesCatalogAdapter struct {
	couples coupleGetter
}

func NewCouplesCatalogAdapter(couples coupleGetter) backingout.Catalog {
	return &CouplesCatalogAdapter{couples: couples}
}

func (a *CouplesCatalogAdapter) Terms(ctx context.Context, coupleID string) (domain.CoupleTerms, error) {
	couple, err := a.couples.GetCouple(ctx, coupleID)
	if err != nil {
		return domain.CoupleTerms{}, err
	}
	out := domain.CoupleTerms{
		CoupleID:   couple.ID,
		Names:      couple.Names(),
		Milestones: make([]domain.Terms, 0, len(couple.Milestones)),
	}
	for _, m := range couple.Milestones {
		out.Milestones = append(out.Milestones, domain.Terms{
			MilestoneID: m.ID,
			Title:       m.Title,
			MinStake:    m.MinBackingAmount,
			Multiplier:  m.Multiplier,
			Deadline:    m.Deadline,
			Resolved:    m.Resolved,
			Successful:  m.Successful,
		})
	}
	return out, nil
}

type CouplesTallyAdapter struct {
	couples couplesin.Usecase
}

func NewCouplesTallyAdapter(couples couplesin.Usecase) backingout.Tallier {
	return &CouplesTallyAdapter{couples: couples}
}

func (a *CouplesTallyAdapter) Tally(ctx context.Context, b domain.Backing) error {
	return a.couples.RecordBacking(ctx, couplesdto.TallyInput{
		Address:     b.Address,
		CoupleID:    b.CoupleID,
		MilestoneID: b.MilestoneID,
		Amount:      b.Amount,
	})
}
