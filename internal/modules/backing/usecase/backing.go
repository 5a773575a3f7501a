package usecase

import (
	"context"

	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/modules/backing/dto"
	backingin "chemlab/internal/modules/backing/port/in"
	"chemlab/internal/modules/backing/service"
)

type Interactor struct {
	svc *service.BackingService
}

func NewInteractor(svc *service.BackingService) backingin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) StartFlow(ctx context.Context, coupleID string) (backingin.Flow, error) {
	terms, err := i.svc.Terms(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return &flowHandle{flow: domain.NewFlow(terms)}, nil
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	records, err := i.svc.Submit(ctx, input.Address, input.CoupleID, toItems(input.AllItems()))
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	out := dto.SubmitOutput{Backings: toBackingOutputs(records)}
	for _, b := range records {
		out.TotalStake += b.Amount
	}
	return out, nil
}

func (i *Interactor) Record(ctx context.Context, input dto.SubmitInput) (dto.RecordOutput, error) {
	records, err := i.svc.Record(ctx, input.Address, input.CoupleID, toItems(input.AllItems()))
	if err != nil {
		return dto.RecordOutput{}, err
	}
	outputs := toBackingOutputs(records)
	out := dto.RecordOutput{Success: true, Backing: outputs[0]}
	if len(outputs) > 1 {
		out.Backings = outputs
	}
	return out, nil
}

func (i *Interactor) List(ctx context.Context, address string) (dto.ListOutput, error) {
	records, err := i.svc.List(ctx, address)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Backings: toBackingOutputs(records), Total: len(records)}
	for _, b := range records {
		out.TotalBacked += b.Amount
		out.TotalPotentialWinnings += b.PotentialWinnings
	}
	return out, nil
}

func (i *Interactor) Claimable(ctx context.Context, address string) ([]dto.ClaimableOutput, error) {
	records, terms, err := i.svc.Claimable(ctx, address)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClaimableOutput, 0, len(records))
	for _, b := range records {
		couple := terms[b.CoupleID]
		t, _ := couple.Terms(b.MilestoneID)
		out = append(out, dto.ClaimableOutput{
			BackingID:      b.ID,
			CoupleID:       b.CoupleID,
			CoupleNames:    couple.Names,
			MilestoneID:    b.MilestoneID,
			MilestoneTitle: t.Title,
			Amount:         b.Amount,
			Payout:         b.PotentialWinnings,
		})
	}
	return out, nil
}

func toItems(in []dto.ItemInput) []domain.Item {
	out := make([]domain.Item, 0, len(in))
	for _, item := range in {
		out = append(out, domain.Item{MilestoneID: item.MilestoneID, Amount: item.Amount})
	}
	return out
}

func toBackingOutputs(in []domain.Backing) []dto.BackingOutput {
	out := make([]dto.BackingOutput, 0, len(in))
	for _, b := range in {
		out = append(out, dto.BackingOutput{
			ID:                b.ID,
			Address:           b.Address,
			CoupleID:          b.CoupleID,
			MilestoneID:       b.MilestoneID,
			Amount:            b.Amount,
			PotentialWinnings: b.PotentialWinnings,
			Timestamp:         b.CreatedAt,
			Claimed:           b.Claimed,
		})
	}
	return out
}
