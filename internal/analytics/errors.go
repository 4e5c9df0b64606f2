package analytics

import "errors"

// Domain-specific errors for the analytics package.
var (
	ErrMissingUser  = errors.New("user identifier is required")
	ErrInvalidRange = errors.New("date range end must be after start")
)
