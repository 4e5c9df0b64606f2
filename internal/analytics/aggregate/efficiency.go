package aggregate

import (
	"math"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// timeManagementReference is the per-task duration treated as full marks.
const timeManagementReference = 60.0 // minutes

// Efficiency derives the five efficiency scores from the metrics and the
// session records.
func Efficiency(m analytics.ProductivityMetrics, sessions []model.SessionRecord) analytics.EfficiencyScores {
	e := analytics.EfficiencyScores{
		Overall:     m.ProductivityScore,
		Estimation:  m.EstimationAccuracy,
		Consistency: Consistency(sessions),
	}

	if tracked := m.FocusTime + m.BreakTime; tracked > 0 {
		e.Focus = math.Min(m.FocusTime/tracked, 1)
	}
	if m.AverageTimePerTask > 0 {
		e.TimeManagement = math.Min(m.AverageTimePerTask/timeManagementReference, 1)
	}

	return e
}

// Consistency is 1 minus the normalized spread of daily session counts:
// regular day-to-day usage scores close to 1, bursty usage close to 0.
// Fewer than two distinct session days scores 0 outright, which avoids
// dividing by a near-zero mean.
func Consistency(sessions []model.SessionRecord) float64 {
	daily := map[string]float64{}
	for _, s := range sessions {
		daily[s.StartedAt.Format("2006-01-02")]++
	}
	if len(daily) < 2 {
		return 0
	}

	var sum float64
	for _, c := range daily {
		sum += c
	}
	mean := sum / float64(len(daily))

	var variance float64
	for _, c := range daily {
		variance += (c - mean) * (c - mean)
	}
	stdev := math.Sqrt(variance / float64(len(daily)))

	return math.Max(0, 1-stdev/mean)
}
