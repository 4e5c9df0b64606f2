package model

// Environment names used for mode switching in the HTTP layer.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity through use-case boundaries.
// UserID may be empty for anonymous estimation requests; components that
// need history lookups treat an empty UserID as "no history available".
type Scope struct {
	UserID string
}
