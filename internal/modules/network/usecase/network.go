package usecase

import (
	"context"

	"chemlab/internal/modules/network/dto"
	networkin "chemlab/internal/modules/network/port/in"
	"chemlab/internal/modules/network/service"
	"chemlab/internal/platform/basename"
)

type Interactor struct {
	svc *service.NetworkService
}

func NewInteractor(svc *service.NetworkService) networkin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(_ context.Context, input dto.StatusInput) (dto.StatusOutput, error) {
	status, err := i.svc.Check(input.ChainID)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	out := dto.StatusOutput{
		IsCorrectNetwork:  status.Correct(),
		ShouldShowWarning: !status.Correct(),
		Instructions:      status.Instructions(),
		TargetChain:       dto.ChainOutput{ID: status.Target.ID, Name: status.Target.Name},
		IsMainnet:         status.Target.Mainnet,
		Label:             status.Label(),
		DisplayName:       basename.DisplayName(input.Basename, input.Address),
	}
	if status.Connected {
		current := status.Current
		out.CurrentChainID = &current
	}
	return out, nil
}
