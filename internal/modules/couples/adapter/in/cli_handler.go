package in

import (
	"context"

	"chemlab/internal/modules/couples/dto"
	couplesin "chemlab/internal/modules/couples/port/in"
)

type CLIHandler struct {
	usecase couplesin.Usecase
}

func NewCLIHandler(usecase couplesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListCouples(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.ListCouples(ctx)
}

func (h CLIHandler) GetCouple(ctx context.Context, id string) (dto.CoupleOutput, error) {
	return h.usecase.GetCouple(ctx, id)
}
