package estimator

import (
	"context"
	"math"
	"time"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/intelligence/repository"
	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/log"
)

const (
	historyLimit         = 10
	historyMaxConfidence = 0.8
	historyTimeout       = 3 * time.Second
)

// HistoricalProvider votes the mean actual duration of the user's recent
// completed tasks in the same category. Lookup failures and missing history
// both degrade to a zero-confidence vote, never an error.
type HistoricalProvider struct {
	repo repository.RecordRepository
	l    log.Logger
}

// NewHistoricalProvider creates the history-backed provider.
func NewHistoricalProvider(repo repository.RecordRepository, l log.Logger) *HistoricalProvider {
	return &HistoricalProvider{repo: repo, l: l}
}

func (p *HistoricalProvider) Name() string { return "historical" }

func (p *HistoricalProvider) Estimate(ctx context.Context, set features.Set, tc model.TaskContext) Vote {
	abstain := Vote{Minutes: 0, Confidence: 0, Method: p.Name()}

	if tc.UserID == "" || p.repo == nil {
		return abstain
	}

	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	records, err := p.repo.ListRecentCompleted(ctx, repository.ListRecentCompletedOptions{
		UserID:   tc.UserID,
		Category: tc.Category,
		Limit:    historyLimit,
	})
	if err != nil {
		p.l.Warnf(ctx, "historical provider: history lookup failed (degrading): %v", err)
		return abstain
	}

	var sum float64
	count := 0
	for _, r := range records {
		if r.DurationMs <= 0 {
			continue
		}
		sum += r.ActualMinutes()
		count++
	}
	if count == 0 {
		return abstain
	}

	return Vote{
		Minutes:    sum / float64(count),
		Confidence: math.Min(float64(count)/10.0, historyMaxConfidence),
		Method:     p.Name(),
	}
}
