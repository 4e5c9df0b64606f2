// Package aggregate computes productivity metrics, patterns, time
// distributions and efficiency scores from raw task and session records.
// Every function is a pure transform of its arguments: empty inputs yield
// zero-valued outputs, never errors.
package aggregate

import (
	"math"
	"time"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// Heuristic split of tracked time between focused work and breaks.
const (
	focusShare = 0.8
	breakShare = 0.2
)

// Metrics computes the per-window totals and rates from the two record
// arrays. Order of the inputs is irrelevant.
func Metrics(tasks []model.TaskRecord, sessions []model.SessionRecord, from, to time.Time) analytics.ProductivityMetrics {
	m := analytics.ProductivityMetrics{TotalTasks: len(tasks)}

	var accuracySum float64
	var accuracyCount int

	for _, t := range tasks {
		if t.Completed {
			m.CompletedTasks++
		}
		actual := t.ActualMinutes()
		if actual > 0 {
			m.TotalTimeSpent += actual
		}
		if actual > 0 && t.EstimatedMinutes > 0 {
			est := float64(t.EstimatedMinutes)
			accuracySum += math.Max(0, 1-math.Abs(actual-est)/est)
			accuracyCount++
		}
	}

	if m.TotalTasks > 0 {
		m.AverageTimePerTask = m.TotalTimeSpent / float64(m.TotalTasks)
		m.ProductivityScore = float64(m.CompletedTasks) / float64(m.TotalTasks)
	}
	if accuracyCount > 0 {
		m.EstimationAccuracy = accuracySum / float64(accuracyCount)
	}

	m.TasksPerDay = float64(m.TotalTasks) / float64(daysDiff(from, to))
	m.FocusTime = focusShare * m.TotalTimeSpent
	m.BreakTime = breakShare * m.TotalTimeSpent

	return m
}

// daysDiff is the window length in whole days, never below 1.
func daysDiff(from, to time.Time) int {
	d := int(math.Ceil(to.Sub(from).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}
