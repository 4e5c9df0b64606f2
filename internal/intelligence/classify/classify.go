// Package classify derives complexity, cognitive-load and urgency scores
// from extracted task features. All functions are pure and thread-safe.
package classify

import (
	"math"

	"productivity-intelligence/internal/intelligence/features"
	"productivity-intelligence/internal/model"
)

// Urgency tiers ordered low to critical.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Scores is the classifier output for one task.
type Scores struct {
	Complexity    float64 // [0,1]
	CognitiveLoad float64 // [0,1]
	Urgency       string
}

// Classify computes all three scores for a task.
func Classify(set features.Set, priority model.Priority) Scores {
	complexity := Complexity(set, priority)
	return Scores{
		Complexity:    complexity,
		CognitiveLoad: CognitiveLoad(set, priority),
		Urgency:       Urgency(set, priority, complexity),
	}
}

// Complexity scores textual/structural difficulty. The base term comes from
// text length and technical keyword density; fixed increments are added per
// keyword family with at least one hit.
func Complexity(set features.Set, priority model.Priority) float64 {
	score := LengthBase(set)

	if set.Hits(features.FamilyTechnical) > 0 {
		score += 0.3
	}
	if set.Hits(features.FamilyProblemSolving) > 0 {
		score += 0.25
	}
	if set.Hits(features.FamilyCreative) > 0 {
		score += 0.2
	}
	if set.Hits(features.FamilyDocumentation) > 0 {
		score += 0.15
	}
	if set.Hits(features.FamilyProcess) > 0 {
		score += 0.2
	}
	if priority == model.PriorityHigh || priority == model.PriorityCritical {
		score += 0.1
	}
	if set.WordCount > 50 {
		score += 0.1
	}

	return clamp01(score)
}

// LengthBase is the text-length component of the complexity score, shared
// with the complexity-derived duration estimator. Each term is capped so a
// single very long field cannot saturate the score on its own.
func LengthBase(set features.Set) float64 {
	titleTerm := math.Min(float64(set.TitleLen)/100.0, 0.3)
	descTerm := math.Min(float64(set.DescLen)/500.0, 0.4)
	techTerm := math.Min(float64(set.Hits(features.FamilyTechnical))*0.1, 0.3)
	return titleTerm + descTerm + techTerm
}

// CognitiveLoad scores the expected mental effort. Independent from
// complexity: a long routine documentation task is complex but low-load.
func CognitiveLoad(set features.Set, priority model.Priority) float64 {
	load := 0.3

	if set.Hits(features.FamilyTechnical) > 0 {
		load += 0.2
	}
	if set.Hits(features.FamilyProblemSolving) > 0 {
		load += 0.3
	}
	if set.Hits(features.FamilyCreative) > 0 {
		load += 0.2
	}
	if priority == model.PriorityHigh || priority == model.PriorityCritical {
		load += 0.1
	}

	return clamp01(load)
}

// Urgency maps the weighted priority/complexity/keyword signal to a tier.
// Explicit priority dominates: each priority step is worth 0.8, more than
// the combined ceiling of the other signals, so phrasing and complexity can
// escalate a task by at most one tier above its stated priority.
func Urgency(set features.Set, priority model.Priority, complexity float64) string {
	score := 0.8*(priority.Rank()+1) +
		0.3*complexity +
		math.Min(0.2*float64(set.Hits(features.FamilyUrgent)), 0.3)

	switch {
	case score >= 2.5:
		return UrgencyCritical
	case score >= 2.0:
		return UrgencyHigh
	case score >= 1.0:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
