package http

import (
	"github.com/gin-gonic/gin"

	"productivity-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:userID", mw.Auth(), h.Summary)
	rg.GET("/:userID/report", mw.Auth(), h.Report)
}
