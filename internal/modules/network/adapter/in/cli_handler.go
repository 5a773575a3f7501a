package in

import (
	"context"

	"chemlab/internal/modules/network/dto"
	networkin "chemlab/internal/modules/network/port/in"
)

type CLIHandler struct {
	usecase networkin.Usecase
}

func NewCLIHandler(usecase networkin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context, chainID, address, name string) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx, dto.StatusInput{ChainID: chainID, Address: address, Basename: name})
}
