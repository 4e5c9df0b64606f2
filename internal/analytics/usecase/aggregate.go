package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/analytics/aggregate"
	"productivity-intelligence/internal/analytics/repository"
	"productivity-intelligence/internal/model"
)

// Aggregate fetches the user's records for the window and computes a fresh
// snapshot. The two record fetches run concurrently; either failing fails
// the call, since analytics has no degraded mode. Snapshot persistence is
// best-effort and never fails the request.
func (uc *implUseCase) Aggregate(ctx context.Context, sc model.Scope, input analytics.AggregateInput) (analytics.AggregateOutput, error) {
	if sc.UserID == "" {
		return analytics.AggregateOutput{}, analytics.ErrMissingUser
	}
	if !input.To.After(input.From) {
		return analytics.AggregateOutput{}, analytics.ErrInvalidRange
	}

	key := cacheKey(sc.UserID, input.From, input.To)
	if snap, ok := uc.cache.Get(key); ok {
		return analytics.AggregateOutput{Snapshot: snap, Cached: true}, nil
	}

	tasks, sessions, err := uc.fetchRecords(ctx, sc.UserID, input.From, input.To)
	if err != nil {
		return analytics.AggregateOutput{}, err
	}

	snap := aggregate.Snapshot(tasks, sessions, input.From, input.To)
	snap.ID = uuid.NewString()
	snap.UserID = sc.UserID
	snap.LastUpdated = time.Now()

	if uc.opts.Archive {
		uc.persist(ctx, snap)
	}
	uc.cache.Add(key, snap)

	return analytics.AggregateOutput{Snapshot: snap}, nil
}

func (uc *implUseCase) fetchRecords(ctx context.Context, userID string, from, to time.Time) ([]model.TaskRecord, []model.SessionRecord, error) {
	opts := repository.ListOptions{UserID: userID, From: from, To: to}

	var (
		wg       sync.WaitGroup
		tasks    []model.TaskRecord
		sessions []model.SessionRecord
		taskErr  error
		sessErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, taskErr = uc.repo.ListTasks(ctx, opts)
	}()
	go func() {
		defer wg.Done()
		sessions, sessErr = uc.repo.ListSessions(ctx, opts)
	}()
	wg.Wait()

	if taskErr != nil {
		return nil, nil, fmt.Errorf("fetch tasks: %w", taskErr)
	}
	if sessErr != nil {
		return nil, nil, fmt.Errorf("fetch sessions: %w", sessErr)
	}
	return tasks, sessions, nil
}

// persist overwrites the current copy and archives a daily one. Failures
// are logged; the computed snapshot is still returned to the caller.
func (uc *implUseCase) persist(ctx context.Context, snap analytics.UserAnalytics) {
	if err := uc.repo.SaveSnapshot(ctx, repository.SnapshotCurrent, snap); err != nil {
		uc.l.Warnf(ctx, "analytics.Aggregate: saving current snapshot failed: %v", err)
	}
	if err := uc.repo.SaveSnapshot(ctx, repository.SnapshotDaily, snap); err != nil {
		uc.l.Warnf(ctx, "analytics.Aggregate: archiving daily snapshot failed: %v", err)
	}
}

func cacheKey(userID string, from, to time.Time) string {
	return fmt.Sprintf("%s|%d|%d", userID, from.Unix(), to.Unix())
}
