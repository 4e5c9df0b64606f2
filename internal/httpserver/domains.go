package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "productivity-intelligence/internal/analytics/delivery/http"
	intelligenceHTTP "productivity-intelligence/internal/intelligence/delivery/http"
	"productivity-intelligence/internal/middleware"
)

// setupIntelligenceDomain registers estimation and scheduling routes.
func (srv HTTPServer) setupIntelligenceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := intelligenceHTTP.New(srv.l, srv.intelligenceUC)

	// Routes: /api/v1/intelligence/{estimate,estimate/batch,schedule}
	intelligenceHTTP.RegisterRoutes(api.Group("/intelligence"), h, mw)

	srv.l.Infof(ctx, "Intelligence domain registered")
	return nil
}

// setupAnalyticsDomain registers analytics summary and report routes.
func (srv HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := analyticsHTTP.New(srv.l, srv.analyticsUC, srv.dateParser)

	// Routes: /api/v1/analytics/:userID[/report]
	analyticsHTTP.RegisterRoutes(api.Group("/analytics"), h, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
