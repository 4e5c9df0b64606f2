package http

import (
	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/estimate", mw.Auth(), h.Estimate)
	rg.POST("/estimate/batch", mw.Auth(), h.EstimateBatch)
	rg.POST("/schedule", mw.Auth(), h.Schedule)
}
