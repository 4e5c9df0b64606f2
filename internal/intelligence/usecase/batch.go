package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/internal/model"
)

// EstimateBatch scores tasks in fixed-size batches: at most BatchSize
// in-flight at once, a pause between batches, and pacing via the shared
// rate limiter. Cancellation stops scheduling new batches but lets
// in-flight estimations finish, so the output may be partial.
func (uc *implUseCase) EstimateBatch(ctx context.Context, sc model.Scope, input intelligence.BatchInput) (intelligence.BatchOutput, error) {
	if len(input.Tasks) == 0 {
		return intelligence.BatchOutput{}, intelligence.ErrEmptyBatch
	}

	items := make([]intelligence.BatchItem, 0, len(input.Tasks))
	var mu sync.Mutex

	for start := 0; start < len(input.Tasks); start += uc.opts.BatchSize {
		if ctx.Err() != nil {
			uc.l.Warnf(ctx, "intelligence.EstimateBatch: cancelled after %d/%d tasks", len(items), len(input.Tasks))
			break
		}

		end := start + uc.opts.BatchSize
		if end > len(input.Tasks) {
			end = len(input.Tasks)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			if err := uc.pacer.Wait(ctx); err != nil {
				break
			}

			wg.Add(1)
			go func(idx int, task intelligence.EstimateInput) {
				defer wg.Done()

				out, err := uc.Estimate(ctx, sc, task)
				if err != nil {
					// Context died mid-flight: record the degraded answer
					// instead of dropping the task.
					out = intelligence.EstimateOutput{Result: uc.fallbackResult(task, time.Now())}
				}

				mu.Lock()
				items = append(items, intelligence.BatchItem{Index: idx, Result: out.Result})
				mu.Unlock()
			}(i, input.Tasks[i])
		}
		wg.Wait()

		if end < len(input.Tasks) {
			select {
			case <-time.After(uc.opts.BatchPause):
			case <-ctx.Done():
			}
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })
	return intelligence.BatchOutput{Items: items, Count: len(items)}, ctx.Err()
}
