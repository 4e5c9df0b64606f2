package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analytics.ErrMissingUser),
		errors.Is(err, analytics.ErrInvalidRange):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
