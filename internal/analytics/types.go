package analytics

import "time"

// ProductivityMetrics are the per-window totals and rates.
type ProductivityMetrics struct {
	TotalTasks         int
	CompletedTasks     int
	TotalTimeSpent     float64 // minutes
	AverageTimePerTask float64 // minutes
	TasksPerDay        float64
	FocusTime          float64 // minutes, 80% heuristic split
	BreakTime          float64 // minutes, 20% heuristic split
	ProductivityScore  float64 // completed/total, [0,1]
	EstimationAccuracy float64 // [0,1]
}

// Pattern types.
const (
	PatternTime     = "time"
	PatternCategory = "category"
)

// Pattern is one detected behavioral regularity.
type Pattern struct {
	Type        string
	Description string
	Strength    float64 // [0,1]
	Confidence  float64 // [0,1]
	Data        map[string]any
}

// Recommendation impact/effort labels.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	EffortLow    = "low"
	EffortMedium = "medium"
)

// Recommendation is one rule-derived improvement suggestion.
type Recommendation struct {
	ID          string
	Title       string
	Description string
	Impact      string
	Effort      string
}

// TimeDistribution buckets tracked minutes for charting.
type TimeDistribution struct {
	ByCategory  map[string]float64
	ByHour      map[int]float64
	ByDayOfWeek map[string]float64
}

// EfficiencyScores summarize how well the window was spent, all [0,1].
type EfficiencyScores struct {
	Overall        float64
	Estimation     float64
	Focus          float64
	Consistency    float64
	TimeManagement float64
}

// UserAnalytics is one fully computed snapshot for a user and date range.
// Snapshots are rebuilt from records on every request, never incrementally
// updated; the "current" stored copy is simply overwritten.
type UserAnalytics struct {
	ID              string
	UserID          string
	From            time.Time
	To              time.Time
	Metrics         ProductivityMetrics
	Patterns        []Pattern
	Recommendations []Recommendation
	Distribution    TimeDistribution
	Efficiency      EfficiencyScores
	LastUpdated     time.Time
}

// AggregateInput selects the analytics window.
type AggregateInput struct {
	From time.Time
	To   time.Time
}

// AggregateOutput wraps the computed snapshot.
type AggregateOutput struct {
	Snapshot UserAnalytics
	Cached   bool
}

// ReportInput selects the window to report on; the preceding window of the
// same length supplies trend baselines.
type ReportInput struct {
	From time.Time
	To   time.Time
}

// TrendDelta compares one metric across consecutive windows.
type TrendDelta struct {
	Metric    string
	Previous  float64
	Current   float64
	Delta     float64
	Direction string // up, down or flat
}

// Report is the human-readable rendering of a snapshot.
type Report struct {
	Summary      string
	Insights     []string
	Trends       []TrendDelta
	Achievements []string
}

// ReportOutput wraps the rendered report and the snapshot it came from.
type ReportOutput struct {
	Report   Report
	Snapshot UserAnalytics
}
