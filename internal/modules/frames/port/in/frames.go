package in

import (
	"context"

	"chemlab/internal/modules/frames/dto"
)

type Usecase interface {
	Frame(ctx context.Context, kind string) (dto.FrameOutput, error)
	Card(ctx context.Context, input dto.CardInput) (dto.CardOutput, error)
}
