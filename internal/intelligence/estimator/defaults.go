package estimator

import (
	"context"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
)

// categoryDefault is the static per-category prior.
type categoryDefault struct {
	Minutes    float64
	Confidence float64
}

var categoryDefaults = map[model.Category]categoryDefault{
	model.CategoryPlanning:      {30, 0.7},
	model.CategoryCoding:        {45, 0.6},
	model.CategoryTesting:       {35, 0.6},
	model.CategoryDocumentation: {40, 0.5},
	model.CategoryResearch:      {60, 0.5},
	model.CategoryMeeting:       {30, 0.8},
	model.CategoryReview:        {25, 0.6},
	model.CategoryGeneral:       {25, 0.4},
}

// CategoryDefault looks up the static prior for a category, falling back to
// the general entry for unknown labels.
func CategoryDefault(category model.Category) (float64, float64) {
	d, ok := categoryDefaults[category]
	if !ok {
		d = categoryDefaults[model.CategoryGeneral]
	}
	return d.Minutes, d.Confidence
}

// DefaultProvider votes the static category prior. It never fails.
type DefaultProvider struct{}

// NewDefaultProvider creates the category-default provider.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (p *DefaultProvider) Name() string { return "category_default" }

func (p *DefaultProvider) Estimate(ctx context.Context, set features.Set, tc model.TaskContext) Vote {
	minutes, confidence := CategoryDefault(tc.Category)
	return Vote{Minutes: minutes, Confidence: confidence, Method: p.Name()}
}
