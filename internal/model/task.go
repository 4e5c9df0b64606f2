package model

import "time"

// Category is the task category label used for defaults and history lookups.
type Category string

const (
	CategoryPlanning      Category = "planning"
	CategoryCoding        Category = "coding"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
	CategoryResearch      Category = "research"
	CategoryMeeting       Category = "meeting"
	CategoryReview        Category = "review"
	CategoryGeneral       Category = "general"
)

// Priority is the user-stated task priority.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank maps a priority to its numeric rank used by the urgency score.
// Unknown values rank as medium.
func (p Priority) Rank() float64 {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityCritical:
		return 3
	default:
		return 1
	}
}

// TaskContext is the immutable input to one estimation call.
type TaskContext struct {
	Title       string
	Description string
	Category    Category
	Priority    Priority
	UserID      string // optional, enables history lookups
}

// TaskRecord is a task row as read from the record store.
// DurationMs holds the actual tracked duration in milliseconds; zero means
// no duration was recorded.
type TaskRecord struct {
	ID               string
	UserID           string
	Title            string
	Category         Category
	Priority         Priority
	Completed        bool
	EstimatedMinutes int
	DurationMs       int64
	CreatedAt        time.Time
	CompletedAt      time.Time
}

// ActualMinutes converts the stored millisecond duration to minutes.
func (t TaskRecord) ActualMinutes() float64 {
	return float64(t.DurationMs) / 60000.0
}

// SessionKind distinguishes focus sessions from break sessions.
type SessionKind string

const (
	SessionFocus SessionKind = "focus"
	SessionBreak SessionKind = "break"
)

// SessionRecord is one timed session as read from the record store.
type SessionRecord struct {
	ID         string
	UserID     string
	TaskID     string
	Kind       SessionKind
	Category   Category
	StartedAt  time.Time
	DurationMs int64
}

// Minutes converts the stored millisecond duration to minutes.
func (s SessionRecord) Minutes() float64 {
	return float64(s.DurationMs) / 60000.0
}
