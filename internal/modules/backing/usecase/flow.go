package usecase

import (
	"chemlab/internal/modules/backing/domain"
	"chemlab/internal/modules/backing/dto"
)

type flowHandle struct {
	flow *domain.Flow
}

func (h *flowHandle) Toggle(milestoneID int) (bool, error) {
	return h.flow.Toggle(milestoneID)
}

func (h *flowHandle) SetStake(milestoneID int, amount int64) error {
	return h.flow.SetStake(milestoneID, amount)
}

func (h *flowHandle) Begin(address string) (dto.SubmitInput, error) {
	items, err := h.flow.Begin()
	if err != nil {
		return dto.SubmitInput{}, err
	}
	in := dto.SubmitInput{Address: address, CoupleID: h.flow.Couple().CoupleID}
	for _, item := range items {
		in.Items = append(in.Items, dto.ItemInput{MilestoneID: item.MilestoneID, Amount: item.Amount})
	}
	return in, nil
}

func (h *flowHandle) Fail(err error) {
	h.flow.Fail(err)
}

func (h *flowHandle) Snapshot() dto.FlowOutput {
	couple := h.flow.Couple()
	sel := h.flow.Selection()
	out := dto.FlowOutput{
		CoupleID:          couple.CoupleID,
		CoupleNames:       couple.Names,
		Milestones:        make([]dto.TermsOutput, 0, len(couple.Milestones)),
		TotalStake:        sel.TotalStake(),
		PotentialWinnings: sel.PotentialWinnings(),
		ProjectedPayout:   sel.ProjectedPayout(),
		Pending:           h.flow.Pending(),
		CanSubmit:         h.flow.CanSubmit(),
	}
	if err := h.flow.LastError(); err != nil {
		out.LastError = err.Error()
	}
	for _, t := range couple.Milestones {
		stake, selected := sel.Stake(t.MilestoneID)
		out.Milestones = append(out.Milestones, dto.TermsOutput{
			MilestoneID: t.MilestoneID,
			Title:       t.Title,
			MinStake:    t.MinStake,
			Multiplier:  t.Multiplier,
			Resolved:    t.Resolved,
			Selected:    selected,
			Stake:       stake,
		})
	}
	return out
}
