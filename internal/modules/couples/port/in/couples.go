package in

import (
	"context"

	"chemlab/internal/modules/couples/dto"
)

type Usecase interface {
	ListCouples(ctx context.Context) (dto.ListOutput, error)
	GetCouple(ctx context.Context, id string) (dto.CoupleOutput, error)
	RecordBacking(ctx context.Context, input dto.TallyInput) error
}
