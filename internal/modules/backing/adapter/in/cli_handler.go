package in

import (
	"context"

	"chemlab/internal/modules/backing/dto"
	backingin "chemlab/internal/modules/backing/port/in"
)

type CLIHandler struct {
	usecase backingin.Usecase
}

func NewCLIHandler(usecase backingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, address string) (dto.ListOutput, error) {
	return h.usecase.List(ctx, address)
}

func (h CLIHandler) Claimable(ctx context.Context, address string) ([]dto.ClaimableOutput, error) {
	return h.usecase.Claimable(ctx, address)
}

// Submit backs a single milestone.
func (h CLIHandler) Submit(ctx context.Context, address, coupleID string, milestoneID int, amount int64) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{
		Address:     address,
		CoupleID:    coupleID,
		MilestoneID: milestoneID,
		Amount:      amount,
	})
}
