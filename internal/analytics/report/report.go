// Package report renders analytics snapshots into human-readable insights,
// trend deltas between consecutive windows, and achievement flags.
package report

import (
	"fmt"
	"math"

	"productivity-intelligence/internal/analytics"
)

// Achievement flags.
const (
	AchievementHighProductivity = "high-productivity"
	AchievementSharpEstimator   = "sharp-estimator"
	AchievementConsistent       = "consistent"
	AchievementDeepFocus        = "deep-focus"
)

// trendEpsilon is the delta below which a metric counts as flat.
const trendEpsilon = 0.01

// Build renders the snapshot. previous may be a zero-valued snapshot when
// no earlier window exists; trends are then omitted.
func Build(current analytics.UserAnalytics, previous analytics.UserAnalytics, hasPrevious bool) analytics.Report {
	r := analytics.Report{
		Summary:      summary(current),
		Insights:     insights(current),
		Achievements: achievements(current),
	}
	if hasPrevious {
		r.Trends = trends(current, previous)
	}
	return r
}

func summary(a analytics.UserAnalytics) string {
	m := a.Metrics
	if m.TotalTasks == 0 {
		return "No tracked tasks in this period."
	}
	return fmt.Sprintf("Completed %d of %d tasks (%.0f%%) across %.0f tracked minutes.",
		m.CompletedTasks, m.TotalTasks, m.ProductivityScore*100, m.TotalTimeSpent)
}

func insights(a analytics.UserAnalytics) []string {
	var out []string

	for _, p := range a.Patterns {
		out = append(out, p.Description)
	}
	if a.Metrics.EstimationAccuracy > 0 {
		out = append(out, fmt.Sprintf("Your estimates land within %.0f%% of actual durations on average.",
			a.Metrics.EstimationAccuracy*100))
	}
	if a.Efficiency.Consistency >= 0.8 {
		out = append(out, "Your daily usage is very regular.")
	}
	for _, rec := range a.Recommendations {
		out = append(out, rec.Description)
	}

	return out
}

func achievements(a analytics.UserAnalytics) []string {
	var out []string
	if a.Metrics.TotalTasks >= 5 && a.Metrics.ProductivityScore >= 0.8 {
		out = append(out, AchievementHighProductivity)
	}
	if a.Metrics.EstimationAccuracy >= 0.85 {
		out = append(out, AchievementSharpEstimator)
	}
	if a.Efficiency.Consistency >= 0.8 {
		out = append(out, AchievementConsistent)
	}
	if a.Metrics.FocusTime >= 300 {
		out = append(out, AchievementDeepFocus)
	}
	return out
}

func trends(current, previous analytics.UserAnalytics) []analytics.TrendDelta {
	pairs := []struct {
		metric   string
		prev     float64
		curr     float64
	}{
		{"productivityScore", previous.Metrics.ProductivityScore, current.Metrics.ProductivityScore},
		{"completedTasks", float64(previous.Metrics.CompletedTasks), float64(current.Metrics.CompletedTasks)},
		{"totalTimeSpent", previous.Metrics.TotalTimeSpent, current.Metrics.TotalTimeSpent},
		{"estimationAccuracy", previous.Metrics.EstimationAccuracy, current.Metrics.EstimationAccuracy},
		{"consistency", previous.Efficiency.Consistency, current.Efficiency.Consistency},
	}

	out := make([]analytics.TrendDelta, 0, len(pairs))
	for _, p := range pairs {
		delta := p.curr - p.prev
		direction := "flat"
		switch {
		case delta > trendEpsilon:
			direction = "up"
		case delta < -trendEpsilon:
			direction = "down"
		}
		out = append(out, analytics.TrendDelta{
			Metric:    p.metric,
			Previous:  p.prev,
			Current:   p.curr,
			Delta:     round2(delta),
			Direction: direction,
		})
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
