// Package estimator holds the duration estimator providers and the
// ensemble that blends their votes into a single estimate.
package estimator

import (
	"context"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
)

// Vote is one provider's opinion: a duration and how much it trusts it.
// A zero-confidence vote is the uniform "I could not help" signal; providers
// return it instead of errors so the ensemble never branches on failures.
type Vote struct {
	Minutes    float64
	Confidence float64
	Method     string
}

// Provider produces a duration vote for a task. Implementations must never
// return an error: external failures degrade to a zero or low-confidence
// vote within the provider's timeout.
type Provider interface {
	Estimate(ctx context.Context, set features.Set, tc model.TaskContext) Vote
	Name() string
}
