package intelligence

import "errors"

// Domain-specific errors for the intelligence package.
var (
	ErrEmptyBatch  = errors.New("batch contains no tasks")
	ErrUnknownSlot = errors.New("unknown time slot")
	ErrZeroDate    = errors.New("schedule date is required")
)
