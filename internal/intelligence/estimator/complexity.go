package estimator

import (
	"context"
	"math"

	"productivity-intelligence/internal/intelligence/classify"
	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
)

const (
	complexityBaseMinutes = 25
	complexityMinMinutes  = 15
	complexityMaxMinutes  = 180
	complexityConfidence  = 0.6
)

// ComplexityProvider scales a Pomodoro by the text-derived complexity base:
// minutes = 25 * (1 + 3*score), clamped to [15,180]. Pure, never fails.
type ComplexityProvider struct{}

// NewComplexityProvider creates the complexity-derived provider.
func NewComplexityProvider() *ComplexityProvider {
	return &ComplexityProvider{}
}

func (p *ComplexityProvider) Name() string { return "complexity" }

func (p *ComplexityProvider) Estimate(ctx context.Context, set features.Set, tc model.TaskContext) Vote {
	score := classify.LengthBase(set)
	minutes := complexityBaseMinutes * (1 + 3*score)
	minutes = math.Max(complexityMinMinutes, math.Min(minutes, complexityMaxMinutes))

	return Vote{Minutes: minutes, Confidence: complexityConfidence, Method: p.Name()}
}
