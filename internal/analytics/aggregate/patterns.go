package aggregate

import (
	"fmt"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// categoryPatternThreshold is the completion rate a category must exceed
// before it is reported as a strength.
const categoryPatternThreshold = 0.7

// Patterns detects behavioral regularities. Detection is opportunistic:
// absent data yields an empty list, never an error.
func Patterns(tasks []model.TaskRecord, sessions []model.SessionRecord) []analytics.Pattern {
	var patterns []analytics.Pattern

	if p, ok := timePattern(sessions); ok {
		patterns = append(patterns, p)
	}
	if p, ok := categoryPattern(tasks); ok {
		patterns = append(patterns, p)
	}

	return patterns
}

// timePattern buckets session starts by hour-of-day and reports the busiest
// hour. Ties resolve to the earliest hour so the result is deterministic
// under input permutation.
func timePattern(sessions []model.SessionRecord) (analytics.Pattern, bool) {
	if len(sessions) == 0 {
		return analytics.Pattern{}, false
	}

	buckets := map[int]int{}
	for _, s := range sessions {
		buckets[s.StartedAt.Hour()]++
	}

	bestHour, bestCount := -1, 0
	for h := 0; h < 24; h++ {
		if buckets[h] > bestCount {
			bestHour, bestCount = h, buckets[h]
		}
	}

	return analytics.Pattern{
		Type:        analytics.PatternTime,
		Description: fmt.Sprintf("Most sessions start around %02d:00", bestHour),
		Strength:    float64(bestCount) / float64(len(sessions)),
		Confidence:  0.8,
		Data:        map[string]any{"hour": bestHour, "sessions": bestCount},
	}, true
}

// categoryPattern reports the best per-category completion rate when it
// clears the threshold. Ties resolve to the lexicographically first
// category name.
func categoryPattern(tasks []model.TaskRecord) (analytics.Pattern, bool) {
	if len(tasks) == 0 {
		return analytics.Pattern{}, false
	}

	totals := map[model.Category]int{}
	completed := map[model.Category]int{}
	for _, t := range tasks {
		totals[t.Category]++
		if t.Completed {
			completed[t.Category]++
		}
	}

	var bestCategory model.Category
	bestRate := -1.0
	for cat, total := range totals {
		rate := float64(completed[cat]) / float64(total)
		if rate > bestRate || (rate == bestRate && cat < bestCategory) {
			bestCategory, bestRate = cat, rate
		}
	}

	if bestRate <= categoryPatternThreshold {
		return analytics.Pattern{}, false
	}

	return analytics.Pattern{
		Type:        analytics.PatternCategory,
		Description: fmt.Sprintf("Strong completion rate in %s tasks", bestCategory),
		Strength:    bestRate,
		Confidence:  0.7,
		Data:        map[string]any{"category": string(bestCategory), "completionRate": bestRate},
	}, true
}
