package http

import (
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/pkg/datemath"
	"productivity-intelligence/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	Summary(c interface{})
	Report(c interface{})
}

type handler struct {
	l      log.Logger
	uc     analytics.UseCase
	parser *datemath.Parser
}

// New creates a new HTTP handler for the analytics domain. The date
// parser resolves relative range bounds such as "yesterday".
func New(l log.Logger, uc analytics.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
	}
}
