package service

import (
	"fmt"
	"strings"

	"chemlab/internal/modules/network/domain"
	apperrors "chemlab/internal/platform/errors"
)

type NetworkService struct {
	development bool
}

func NewNetworkService(development bool) *NetworkService {
	return &NetworkService{development: development}
}

// Check treats an empty chain id as a wallet that is not connected.
func (s *NetworkService) Check(rawChainID string) (domain.Status, error) {
	if strings.TrimSpace(rawChainID) == "" {
		return domain.Check(0, false, s.development), nil
	}
	id, err := domain.ParseChainID(rawChainID)
	if err != nil {
		return domain.Status{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return domain.Check(id, true, s.development), nil
}
