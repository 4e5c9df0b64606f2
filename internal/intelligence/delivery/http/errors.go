package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Domain
// validation errors and caller cancellation become 400s with the error
// text; anything else is an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, intelligence.ErrEmptyBatch),
		errors.Is(err, intelligence.ErrUnknownSlot),
		errors.Is(err, intelligence.ErrZeroDate),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
