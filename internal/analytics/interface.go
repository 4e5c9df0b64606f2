package analytics

import (
	"context"

	"productivity-intelligence/internal/model"
)

// UseCase defines the business logic interface for the analytics domain.
type UseCase interface {
	// Aggregate fetches the user's task and session records for the window
	// and computes a fresh snapshot. Recent identical windows are served
	// from cache; computed snapshots are persisted and archived best-effort.
	Aggregate(ctx context.Context, sc model.Scope, input AggregateInput) (AggregateOutput, error)

	// Report renders a snapshot into insights, trend deltas against the
	// preceding window, and achievement flags.
	Report(ctx context.Context, sc model.Scope, input ReportInput) (ReportOutput, error)
}
