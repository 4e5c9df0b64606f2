package estimator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"productivity-intelligence/internal/intelligence/estimator"
	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/intelligence/repository"
	"productivity-intelligence/internal/model"
	"productivity-intelligence/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRecordRepo struct {
	records []model.TaskRecord
	err     error
}

func (m *mockRecordRepo) ListRecentCompleted(ctx context.Context, opt repository.ListRecentCompletedOptions) ([]model.TaskRecord, error) {
	return m.records, m.err
}

type mockGenerator struct {
	text string
	err  error
}

func (m *mockGenerator) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, Usage: &llmprovider.Usage{}}, nil
}

func ctxAndSet(tc model.TaskContext) (context.Context, features.Set) {
	return context.Background(), features.Extract(tc)
}

func TestHistoricalProvider(t *testing.T) {
	tc := model.TaskContext{Title: "Write tests", Category: model.CategoryTesting, UserID: "u1"}

	t.Run("votes the mean of recorded durations", func(t *testing.T) {
		repo := &mockRecordRepo{records: []model.TaskRecord{
			{DurationMs: 30 * 60000},
			{DurationMs: 60 * 60000},
			{DurationMs: 0}, // no recorded duration, skipped
		}}
		p := estimator.NewHistoricalProvider(repo, &mockLogger{})

		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 45 {
			t.Errorf("expected 45 minutes, got %f", vote.Minutes)
		}
		if vote.Confidence != 0.2 { // 2 usable records / 10
			t.Errorf("expected confidence 0.2, got %f", vote.Confidence)
		}
	})

	t.Run("confidence is capped at 0.8", func(t *testing.T) {
		records := make([]model.TaskRecord, 12)
		for i := range records {
			records[i] = model.TaskRecord{DurationMs: 25 * 60000}
		}
		p := estimator.NewHistoricalProvider(&mockRecordRepo{records: records}, &mockLogger{})

		ctx, set := ctxAndSet(tc)
		if vote := p.Estimate(ctx, set, tc); vote.Confidence != 0.8 {
			t.Errorf("expected cap 0.8, got %f", vote.Confidence)
		}
	})

	t.Run("no user means zero-confidence abstention", func(t *testing.T) {
		anon := model.TaskContext{Title: "Write tests", Category: model.CategoryTesting}
		p := estimator.NewHistoricalProvider(&mockRecordRepo{}, &mockLogger{})

		ctx, set := ctxAndSet(anon)
		if vote := p.Estimate(ctx, set, anon); vote.Confidence != 0 {
			t.Errorf("expected confidence 0, got %f", vote.Confidence)
		}
	})

	t.Run("lookup failure degrades instead of erroring", func(t *testing.T) {
		p := estimator.NewHistoricalProvider(&mockRecordRepo{err: errors.New("store down")}, &mockLogger{})

		ctx, set := ctxAndSet(tc)
		if vote := p.Estimate(ctx, set, tc); vote.Confidence != 0 {
			t.Errorf("expected confidence 0 on failure, got %f", vote.Confidence)
		}
	})
}

func TestDefaultProvider(t *testing.T) {
	p := estimator.NewDefaultProvider()

	t.Run("known category", func(t *testing.T) {
		tc := model.TaskContext{Category: model.CategoryCoding}
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 45 || vote.Confidence != 0.6 {
			t.Errorf("expected (45, 0.6), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})

	t.Run("unknown category falls back to general", func(t *testing.T) {
		tc := model.TaskContext{Category: "gardening"}
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 25 || vote.Confidence != 0.4 {
			t.Errorf("expected (25, 0.4), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})
}

func TestComplexityProvider(t *testing.T) {
	p := estimator.NewComplexityProvider()

	t.Run("empty text clamps to the floor", func(t *testing.T) {
		tc := model.TaskContext{}
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 25 { // 25*(1+0) is above the 15 floor
			t.Errorf("expected 25, got %f", vote.Minutes)
		}
		if vote.Confidence != 0.6 {
			t.Errorf("expected confidence 0.6, got %f", vote.Confidence)
		}
	})

	t.Run("dense technical text clamps to the ceiling band", func(t *testing.T) {
		tc := model.TaskContext{
			Title:       strings.Repeat("refactor the api ", 10),
			Description: strings.Repeat("implement debug deploy database migration ", 20),
		}
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes < 15 || vote.Minutes > 180 {
			t.Errorf("minutes %f outside [15,180]", vote.Minutes)
		}
	})
}

func TestModelProvider(t *testing.T) {
	tc := model.TaskContext{Title: "Plan sprint", Category: model.CategoryPlanning, Priority: model.PriorityMedium}

	t.Run("parses clean JSON output", func(t *testing.T) {
		p := estimator.NewModelProvider(&mockGenerator{text: `{"minutes": 90, "confidence": 0.7}`}, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 90 || vote.Confidence != 0.7 {
			t.Errorf("expected (90, 0.7), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		p := estimator.NewModelProvider(&mockGenerator{
			text: "Here you go:\n```json\n{\"minutes\": 35, \"confidence\": 0.55}\n```",
		}, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 35 {
			t.Errorf("expected 35, got %f", vote.Minutes)
		}
	})

	t.Run("clamps out-of-band output", func(t *testing.T) {
		p := estimator.NewModelProvider(&mockGenerator{text: `{"minutes": 900, "confidence": 0.99}`}, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 240 || vote.Confidence != 0.9 {
			t.Errorf("expected clamp to (240, 0.9), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})

	t.Run("transport failure yields the default vote", func(t *testing.T) {
		p := estimator.NewModelProvider(&mockGenerator{err: errors.New("timeout")}, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 25 || vote.Confidence != 0.4 {
			t.Errorf("expected default (25, 0.4), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})

	t.Run("unparseable prose yields the default vote", func(t *testing.T) {
		p := estimator.NewModelProvider(&mockGenerator{text: "about an hour, give or take"}, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 25 || vote.Confidence != 0.4 {
			t.Errorf("expected default (25, 0.4), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})

	t.Run("nil generator always votes the default", func(t *testing.T) {
		p := estimator.NewModelProvider(nil, &mockLogger{})
		ctx, set := ctxAndSet(tc)
		vote := p.Estimate(ctx, set, tc)
		if vote.Minutes != 25 || vote.Confidence != 0.4 {
			t.Errorf("expected default (25, 0.4), got (%f, %f)", vote.Minutes, vote.Confidence)
		}
	})
}
