package http

import (
	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/pkg/log"
)

// Handler is the public interface for the intelligence HTTP delivery layer.
type Handler interface {
	Estimate(c interface{})
	EstimateBatch(c interface{})
	Schedule(c interface{})
}

type handler struct {
	l  log.Logger
	uc intelligence.UseCase
}

// New creates a new HTTP handler for the intelligence domain.
func New(l log.Logger, uc intelligence.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
