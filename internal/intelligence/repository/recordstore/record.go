// Package recordstore implements the intelligence record repository on top
// of the document-store HTTP client.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"productivity-intelligence/internal/intelligence/repository"
	"productivity-intelligence/internal/model"
	pkgLog "productivity-intelligence/pkg/log"
	"productivity-intelligence/pkg/recordstore"
)

type implRepository struct {
	l     pkgLog.Logger
	store recordstore.IRecordStore
}

// New creates a new intelligence record repository.
func New(l pkgLog.Logger, store recordstore.IRecordStore) *implRepository {
	return &implRepository{l: l, store: store}
}

var _ repository.RecordRepository = (*implRepository)(nil)

// taskDocument is the task payload shape stored in the tasks collection.
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

// ListRecentCompleted fetches the user's most recent completed tasks in a
// category, newest first. Documents with undecodable payloads are skipped
// with a warning rather than failing the lookup.
func (r *implRepository) ListRecentCompleted(ctx context.Context, opt repository.ListRecentCompletedOptions) ([]model.TaskRecord, error) {
	completed := true
	docs, err := r.store.ListDocuments(ctx, recordstore.CollectionTasks, recordstore.Query{
		UserID:    opt.UserID,
		Category:  string(opt.Category),
		Completed: &completed,
		Limit:     opt.Limit,
		SortDesc:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed tasks: %w", err)
	}

	records := make([]model.TaskRecord, 0, len(docs))
	for _, doc := range docs {
		var td taskDocument
		if err := json.Unmarshal(doc.Data, &td); err != nil {
			r.l.Warnf(ctx, "recordstore.ListRecentCompleted: skipping undecodable document %s: %v", doc.ID, err)
			continue
		}
		records = append(records, toTaskRecord(td))
	}
	return records, nil
}

func toTaskRecord(td taskDocument) model.TaskRecord {
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
	return rec
}
