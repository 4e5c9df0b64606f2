package usecase

import (
	"time"

	"golang.org/x/time/rate"

	"productivity-intelligence/internal/intelligence/estimator"
	"productivity-intelligence/internal/intelligence/recommend"
	"productivity-intelligence/pkg/gcalendar"
	pkgLog "productivity-intelligence/pkg/log"
)

// Options tunes batch processing and scheduling.
type Options struct {
	BatchSize  int           // max in-flight estimations per batch
	BatchPause time.Duration // pause between batches
	Timezone   string        // IANA name for slot booking, defaults to UTC
}

type implUseCase struct {
	l           pkgLog.Logger
	providers   []estimator.Provider
	recommender *recommend.Generator
	calendar    *gcalendar.Client // nil disables booking links
	opts        Options
	pacer       *rate.Limiter
}

// New creates a new intelligence UseCase instance. calendar may be nil;
// Schedule then returns windows without booking links.
func New(
	l pkgLog.Logger,
	providers []estimator.Provider,
	recommender *recommend.Generator,
	calendar *gcalendar.Client,
	opts Options,
) *implUseCase {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 5
	}
	if opts.BatchPause <= 0 {
		opts.BatchPause = time.Second
	}

	// One item per pause interval on average, bursting a full batch.
	pacer := rate.NewLimiter(rate.Every(opts.BatchPause/time.Duration(opts.BatchSize)), opts.BatchSize)

	return &implUseCase{
		l:           l,
		providers:   providers,
		recommender: recommender,
		calendar:    calendar,
		opts:        opts,
		pacer:       pacer,
	}
}
