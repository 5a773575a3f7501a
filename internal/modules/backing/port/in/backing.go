package in

import (
	"context"

	"chemlab/internal/modules/backing/dto"
)

type Usecase interface {
	StartFlow(ctx context.Context, coupleID string) (Flow, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	Record(ctx context.Context, input dto.SubmitInput) (dto.RecordOutput, error)
	List(ctx context.Context, address string) (dto.ListOutput, error)
	Claimable(ctx context.Context, address string) ([]dto.ClaimableOutput, error)
}

// Flow is an open milestone selection for one couple.
type Flow interface {
	Toggle(milestoneID int) (bool, error)
	SetStake(milestoneID int, amount int64) error
	Snapshot() dto.FlowOutput
	Begin(address string) (dto.SubmitInput, error)
	Fail(err error)
}
