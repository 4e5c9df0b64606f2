package repository

import (
	"context"
	"time"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// ListOptions selects a user's records within a date window.
type ListOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}

// SnapshotKind selects the stored snapshot slot.
type SnapshotKind string

const (
	SnapshotCurrent SnapshotKind = "current" // overwritten on every aggregation
	SnapshotDaily   SnapshotKind = "daily"   // archived once per day
)

// Repository reads task/session records and persists computed snapshots.
type Repository interface {
	ListTasks(ctx context.Context, opts ListOptions) ([]model.TaskRecord, error)
	ListSessions(ctx context.Context, opts ListOptions) ([]model.SessionRecord, error)
	SaveSnapshot(ctx context.Context, kind SnapshotKind, snapshot analytics.UserAnalytics) error
}
