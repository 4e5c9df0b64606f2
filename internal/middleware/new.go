package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"productivity-intelligence/config"
	"productivity-intelligence/pkg/log"
)

// Middleware holds the cross-cutting HTTP concerns: internal-key auth,
// per-client rate limiting and request identification.
type Middleware struct {
	l           log.Logger
	internalKey string
	limiter     *clientLimiter
}

func New(l log.Logger, cfg config.SecurityConfig) Middleware {
	return Middleware{
		l:           l,
		internalKey: cfg.InternalKey,
		limiter:     newClientLimiter(cfg.RateLimitPerMin),
	}
}

// clientLimiter keeps one token bucket per client with auto-expiry so
// one-off clients do not accumulate forever.
type clientLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientLimiter(requestsPerMin int) *clientLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000, // max unique clients tracked
			nil,
			5*time.Minute,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (cl *clientLimiter) allow(key string) bool {
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
