package domain

import (
	"fmt"

	apperrors "chemlab/internal/platform/errors"
)

var (
	ErrEmptySelection     = apperrors.ErrEmptySelection
	ErrSubmissionInFlight = apperrors.ErrSubmissionInFlight
	ErrBelowMinimum       = apperrors.ErrBelowMinimum
	ErrUnknownMilestone   = fmt.Errorf("unknown milestone: %w", apperrors.ErrNotFound)
	ErrInvalidItems       = fmt.Errorf("invalid backing items: %w", apperrors.ErrInvalidInput)
)
