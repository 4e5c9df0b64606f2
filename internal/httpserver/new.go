package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "productivity-intelligence/config"
	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/intelligence"
	"productivity-intelligence/pkg/datemath"
	"productivity-intelligence/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	security    appConfig.SecurityConfig

	// Intelligence domain
	intelligenceUC intelligence.UseCase

	// Analytics domain
	analyticsUC analytics.UseCase
	dateParser  *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Security    appConfig.SecurityConfig

	// Intelligence domain
	IntelligenceUC intelligence.UseCase

	// Analytics domain
	AnalyticsUC analytics.UseCase
	DateParser  *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		security:       cfg.Security,
		intelligenceUC: cfg.IntelligenceUC,
		analyticsUC:    cfg.AnalyticsUC,
		dateParser:     cfg.DateParser,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.intelligenceUC == nil {
		return errors.New("intelligence use case is required")
	}
	if srv.analyticsUC == nil {
		return errors.New("analytics use case is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
