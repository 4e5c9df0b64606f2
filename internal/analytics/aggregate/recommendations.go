package aggregate

import (
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// Rule thresholds for the recommendation table.
const (
	accuracyFloor   = 0.7
	completionFloor = 0.6
	breakRatioFloor = 0.15
)

// Recommendations applies the rule table to the computed metrics. Rules are
// independent and may all fire at once. The break-ratio rule is evaluated
// against break-labeled session records rather than the heuristic split,
// which would otherwise fix the ratio at 20%.
func Recommendations(m analytics.ProductivityMetrics, sessions []model.SessionRecord) []analytics.Recommendation {
	var recs []analytics.Recommendation

	if m.EstimationAccuracy > 0 && m.EstimationAccuracy < accuracyFloor {
		recs = append(recs, analytics.Recommendation{
			ID:          "improve-estimation",
			Title:       "Improve estimation",
			Description: "Your estimates regularly miss actual durations. Compare a few recent tasks against their estimates before sizing new ones.",
			Impact:      analytics.ImpactHigh,
			Effort:      analytics.EffortMedium,
		})
	}

	if m.TotalTasks > 0 && m.ProductivityScore < completionFloor {
		recs = append(recs, analytics.Recommendation{
			ID:          "increase-completion-rate",
			Title:       "Increase completion rate",
			Description: "More than a third of your tasks stay open. Start fewer tasks per day or split large ones before starting.",
			Impact:      analytics.ImpactHigh,
			Effort:      analytics.EffortLow,
		})
	}

	if ratio, ok := breakRatio(sessions); ok && ratio < breakRatioFloor {
		recs = append(recs, analytics.Recommendation{
			ID:          "take-breaks",
			Title:       "Take breaks",
			Description: "Less than 15% of your tracked time is breaks. Short regular breaks sustain focus across the day.",
			Impact:      analytics.ImpactMedium,
			Effort:      analytics.EffortLow,
		})
	}

	return recs
}

// breakRatio is break minutes over total session minutes. The second return
// is false when no session time is tracked.
func breakRatio(sessions []model.SessionRecord) (float64, bool) {
	var total, breaks float64
	for _, s := range sessions {
		minutes := s.Minutes()
		if minutes <= 0 {
			continue
		}
		total += minutes
		if s.Kind == model.SessionBreak {
			breaks += minutes
		}
	}
	if total == 0 {
		return 0, false
	}
	return breaks / total, true
}
