// Package recordstore implements the analytics repository on top of the
// document-store HTTP client: record reads for aggregation and snapshot
// writes for the current and archived copies.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/analytics/repository"
	"productivity-intelligence/internal/model"
	pkgLog "productivity-intelligence/pkg/log"
	"productivity-intelligence/pkg/recordstore"
)

type implRepository struct {
	l     pkgLog.Logger
	store recordstore.IRecordStore
}

// New creates a new analytics repository.
func New(l pkgLog.Logger, store recordstore.IRecordStore) *implRepository {
	return &implRepository{l: l, store: store}
}

var _ repository.Repository = (*implRepository)(nil)

type taskDocument struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	Title            string `json:"title"`
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	Completed        bool   `json:"completed"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	DurationMs       int64  `json:"durationMs"`
	CreatedAt        string `json:"createdAt"`
	CompletedAt      string `json:"completedAt"`
}

type sessionDocument struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	TaskID     string `json:"taskId"`
	Kind       string `json:"kind"`
	Category   string `json:"category"`
	StartedAt  string `json:"startedAt"`
	DurationMs int64  `json:"durationMs"`
}

// ListTasks fetches the user's task records within the window.
func (r *implRepository) ListTasks(ctx context.Context, opts repository.ListOptions) ([]model.TaskRecord, error) {
	docs, err := r.store.ListDocuments(ctx, recordstore.CollectionTasks, recordstore.Query{
		UserID: opts.UserID,
		From:   opts.From,
		To:     opts.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	records := make([]model.TaskRecord, 0, len(docs))
	for _, doc := range docs {
		var td taskDocument
		if err := json.Unmarshal(doc.Data, &td); err != nil {
			r.l.Warnf(ctx, "recordstore.ListTasks: skipping undecodable document %s: %v", doc.ID, err)
			continue
		}
		rec := model.TaskRecord{
			ID:               td.ID,
			UserID:           td.UserID,
			Title:            td.Title,
			Category:         model.Category(td.Category),
			Priority:         model.Priority(td.Priority),
			Completed:        td.Completed,
			EstimatedMinutes: td.EstimatedMinutes,
			DurationMs:       td.DurationMs,
		}
		if t, err := time.Parse(time.RFC3339, td.CreatedAt); err == nil {
			rec.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, td.CompletedAt); err == nil {
			rec.CompletedAt = t
		}
		records = append(records, rec)
	}
	return records, nil
}

// ListSessions fetches the user's session records within the window.
func (r *implRepository) ListSessions(ctx context.Context, opts repository.ListOptions) ([]model.SessionRecord, error) {
	docs, err := r.store.ListDocuments(ctx, recordstore.CollectionSessions, recordstore.Query{
		UserID: opts.UserID,
		From:   opts.From,
		To:     opts.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	records := make([]model.SessionRecord, 0, len(docs))
	for _, doc := range docs {
		var sd sessionDocument
		if err := json.Unmarshal(doc.Data, &sd); err != nil {
			r.l.Warnf(ctx, "recordstore.ListSessions: skipping undecodable document %s: %v", doc.ID, err)
			continue
		}
		rec := model.SessionRecord{
			ID:         sd.ID,
			UserID:     sd.UserID,
			TaskID:     sd.TaskID,
			Kind:       model.SessionKind(sd.Kind),
			Category:   model.Category(sd.Category),
			DurationMs: sd.DurationMs,
		}
		if t, err := time.Parse(time.RFC3339, sd.StartedAt); err == nil {
			rec.StartedAt = t
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveSnapshot upserts the snapshot under a kind-scoped key: the current
// copy uses a stable per-user key and is overwritten on every aggregation;
// daily archives key on the snapshot date.
func (r *implRepository) SaveSnapshot(ctx context.Context, kind repository.SnapshotKind, snapshot analytics.UserAnalytics) error {
	key := fmt.Sprintf("%s:%s", snapshot.UserID, kind)
	if kind == repository.SnapshotDaily {
		key = fmt.Sprintf("%s:%s:%s", snapshot.UserID, kind, snapshot.To.Format("2006-01-02"))
	}

	if _, err := r.store.PutDocument(ctx, recordstore.CollectionAnalytics, recordstore.PutRequest{
		Key:  key,
		Data: snapshot,
	}); err != nil {
		return fmt.Errorf("save %s snapshot: %w", kind, err)
	}
	return nil
}
