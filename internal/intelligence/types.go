package intelligence

import (
	"time"

	"productivity-intelligence/internal/model"
)

// EstimateInput is one task to score. UserID lives in model.Scope.
type EstimateInput struct {
	Title       string
	Description string
	Category    model.Category
	Priority    model.Priority
}

// ProcessingMeta records how an estimate was produced.
type ProcessingMeta struct {
	Timestamp time.Time
	Methods   []string // contributing estimator methods, "fallback" when degraded
	ElapsedMs int64
}

// Result is the durable scoring output for one task.
type Result struct {
	EstimatedDuration  int     // minutes, always >= 1
	ComplexityScore    float64 // [0,1]
	CognitiveLoad      float64 // [0,1]
	Urgency            string // low, medium, high or critical
	Tags               []string
	SuggestedTimeSlots []string
	OptimizationTips   []string
	Prerequisites      []string
	RelatedTasks       []string

	// Confidence reflects input richness; EnsembleConfidence reflects
	// estimator agreement. Both capped at 0.95.
	Confidence         float64
	EnsembleConfidence float64

	Processing ProcessingMeta
}

// EstimateOutput wraps a single scoring result.
type EstimateOutput struct {
	Result Result
}

// BatchInput is the bulk-import path: many tasks scored together.
type BatchInput struct {
	Tasks []EstimateInput
}

// BatchItem pairs an input index with its result so callers can correlate.
type BatchItem struct {
	Index  int
	Result Result
}

// BatchOutput preserves input order.
type BatchOutput struct {
	Items []BatchItem
	Count int
}

// ScheduleInput books a slot for a previously estimated task.
type ScheduleInput struct {
	Title           string
	Description     string
	Slot            string // morning, afternoon or evening
	Date            time.Time
	DurationMinutes int
}

// ScheduleOutput reports the booked window. EventLink is empty when the
// calendar collaborator was unavailable.
type ScheduleOutput struct {
	Start     time.Time
	End       time.Time
	EventID   string
	EventLink string
}
