package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"productivity-intelligence/config"
	_ "productivity-intelligence/docs" // Swagger docs
	analyticsRepo "productivity-intelligence/internal/analytics/repository/recordstore"
	analyticsUC "productivity-intelligence/internal/analytics/usecase"
	"productivity-intelligence/internal/httpserver"
	"productivity-intelligence/internal/intelligence/estimator"
	"productivity-intelligence/internal/intelligence/recommend"
	intelligenceRepo "productivity-intelligence/internal/intelligence/repository/recordstore"
	intelligenceUC "productivity-intelligence/internal/intelligence/usecase"
	"productivity-intelligence/pkg/datemath"
	"productivity-intelligence/pkg/gcalendar"
	"productivity-intelligence/pkg/llmprovider"
	"productivity-intelligence/pkg/log"
	"productivity-intelligence/pkg/recordstore"
)

// @title       Productivity Intelligence API
// @description Task duration estimation, classification, recommendations and productivity analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Record store URL: %s", cfg.RecordStore.URL)

	// 3. Record store client, shared by both domains
	storeClient := recordstore.NewClient(cfg.RecordStore.URL, cfg.RecordStore.APIKey)

	// 4. External model (optional). Without configured providers the
	// pipeline runs on history, defaults and complexity alone.
	var textGen *llmprovider.Manager
	if len(cfg.LLM.Providers) > 0 {
		providers, llmErr := llmprovider.InitializeProviders(&cfg.LLM)
		if llmErr != nil {
			logger.Warnf(ctx, "LLM providers not available (optional): %v", llmErr)
		} else {
			textGen = llmprovider.NewManager(providers, managerConfig(cfg.LLM), logger)
			logger.Infof(ctx, "LLM abstraction initialized with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, model estimation disabled")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			calendarClient.SetDefaultCalendar(cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Intelligence domain
	recordRepo := intelligenceRepo.New(logger, storeClient)
	estimators := []estimator.Provider{
		estimator.NewHistoricalProvider(recordRepo, logger),
		estimator.NewDefaultProvider(),
		estimator.NewComplexityProvider(),
	}
	if textGen != nil {
		estimators = append(estimators, estimator.NewModelProvider(textGen, logger))
	}

	var recommender *recommend.Generator
	if textGen != nil {
		recommender = recommend.NewGenerator(textGen, logger)
	}

	intelUC := intelligenceUC.New(logger, estimators, recommender, calendarClient, intelligenceUC.Options{
		BatchSize:  cfg.Intelligence.BatchSize,
		BatchPause: cfg.Intelligence.BatchPause,
		Timezone:   cfg.Intelligence.Timezone,
	})

	// 7. Analytics domain
	analyticsRepository := analyticsRepo.New(logger, storeClient)
	analUC := analyticsUC.New(logger, analyticsRepository, analyticsUC.Options{
		CacheSize: cfg.Analytics.CacheSize,
		CacheTTL:  cfg.Analytics.CacheTTL,
		Archive:   cfg.Analytics.Archive,
	})

	// 8. Date parser for analytics range bounds
	dateParser, dtErr := datemath.NewParser(cfg.Intelligence.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Intelligence.Timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Security:       cfg.Security,
		IntelligenceUC: intelUC,
		AnalyticsUC:    analUC,
		DateParser:     dateParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// managerConfig converts the YAML duration strings into the manager's
// typed config, falling back to conservative defaults on parse failure.
func managerConfig(cfg config.LLMConfig) *llmprovider.Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil || retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil || maxTotal <= 0 {
		maxTotal = 45 * time.Second
	}
	retries := cfg.RetryAttempts
	if retries <= 0 {
		retries = 2
	}
	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   retries,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
