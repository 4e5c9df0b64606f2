package recordstore

import "time"

const (
	defaultTimeout = 10 * time.Second

	// Collections used by this service.
	CollectionTasks     = "tasks"
	CollectionSessions  = "sessions"
	CollectionAnalytics = "analytics"
)
