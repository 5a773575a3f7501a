package in

import (
	"context"

	"chemlab/internal/modules/network/dto"
)

type Usecase interface {
	Status(ctx context.Context, input dto.StatusInput) (dto.StatusOutput, error)
}
