package aggregate

import (
	"time"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/model"
)

// Snapshot runs every aggregation step over the two record arrays and
// assembles an unidentified snapshot; the caller stamps ID, user and
// timestamps. Stateless: repeated invocations over permuted inputs yield
// identical metrics, distributions and efficiency scores.
func Snapshot(tasks []model.TaskRecord, sessions []model.SessionRecord, from, to time.Time) analytics.UserAnalytics {
	metrics := Metrics(tasks, sessions, from, to)

	return analytics.UserAnalytics{
		From:            from,
		To:              to,
		Metrics:         metrics,
		Patterns:        Patterns(tasks, sessions),
		Recommendations: Recommendations(metrics, sessions),
		Distribution:    Distribution(sessions),
		Efficiency:      Efficiency(metrics, sessions),
	}
}
