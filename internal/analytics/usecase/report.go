package usecase

import (
	"context"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/analytics/report"
	"productivity-intelligence/internal/model"
)

// Report aggregates the requested window plus the preceding window of the
// same length, then renders insights and trends. A failure fetching the
// previous window only drops the trend section.
func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.ReportOutput, error) {
	current, err := uc.Aggregate(ctx, sc, analytics.AggregateInput{From: input.From, To: input.To})
	if err != nil {
		return analytics.ReportOutput{}, err
	}

	window := input.To.Sub(input.From)
	previous, prevErr := uc.Aggregate(ctx, sc, analytics.AggregateInput{
		From: input.From.Add(-window),
		To:   input.From,
	})
	if prevErr != nil {
		uc.l.Warnf(ctx, "analytics.Report: previous window unavailable, omitting trends: %v", prevErr)
	}

	return analytics.ReportOutput{
		Report:   report.Build(current.Snapshot, previous.Snapshot, prevErr == nil),
		Snapshot: current.Snapshot,
	}, nil
}
