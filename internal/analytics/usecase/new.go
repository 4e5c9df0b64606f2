package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"productivity-intelligence/internal/analytics"
	"productivity-intelligence/internal/analytics/repository"
	pkgLog "productivity-intelligence/pkg/log"
)

// Options tunes snapshot caching and archival.
type Options struct {
	CacheSize int           // distinct (user, window) entries kept
	CacheTTL  time.Duration // how long a cached snapshot stays fresh
	Archive   bool          // write current + daily copies back to the store
}

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	opts  Options
	cache *expirable.LRU[string, analytics.UserAnalytics]
}

// New creates a new analytics UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, opts Options) *implUseCase {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	return &implUseCase{
		l:     l,
		repo:  repo,
		opts:  opts,
		cache: expirable.NewLRU[string, analytics.UserAnalytics](opts.CacheSize, nil, opts.CacheTTL),
	}
}
