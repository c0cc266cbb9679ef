package middleware

import (
	pkgLog "task-dashboard/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitEnabled bool
	RateLimitPerMin  int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A disabled or non-positive rate limit
// leaves RateLimit as a pass-through.
func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
