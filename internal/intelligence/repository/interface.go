package repository

import (
	"context"

	"productivity-intelligence/internal/model"
)

// RecordRepository is the read-only view of the record store used by the
// intelligence domain. The engine never writes through this interface;
// persisting results is the caller's responsibility.
type RecordRepository interface {
	// ListRecentCompleted returns up to opt.Limit most-recent completed
	// tasks in the given category for the user, newest first.
	ListRecentCompleted(ctx context.Context, opt ListRecentCompletedOptions) ([]model.TaskRecord, error)
}

// ListRecentCompletedOptions filters the history lookup.
type ListRecentCompletedOptions struct {
	UserID   string
	Category model.Category
	Limit    int
}
