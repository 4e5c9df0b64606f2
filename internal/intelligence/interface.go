package intelligence

import (
	"context"

	"productivity-intelligence/internal/model"
)

// UseCase defines the business logic interface for the task intelligence domain.
type UseCase interface {
	// Estimate scores one task: duration ensemble, classification, and
	// recommendations. Pipeline failures degrade to a fallback result;
	// the only error returned is cancellation of the caller's context.
	Estimate(ctx context.Context, sc model.Scope, input EstimateInput) (EstimateOutput, error)

	// EstimateBatch scores many tasks with bounded concurrency and a pause
	// between batches to respect external-provider rate limits.
	EstimateBatch(ctx context.Context, sc model.Scope, input BatchInput) (BatchOutput, error)

	// Schedule books a focus slot for an estimated task on the user's
	// calendar. Calendar failures return the output without a link.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
}
