package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrEmptySelection     = errors.New("no milestones selected")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrBelowMinimum       = errors.New("stake below milestone minimum")
)
