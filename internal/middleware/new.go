package middleware

import (
	"shopfloor-tasks/pkg/log"
)

// Middleware bundles the gin middlewares shared across routes.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// Config holds middleware tuning knobs.
type Config struct {
	RateLimitPerMin int // Per-client request budget; 0 disables limiting
}

func New(l log.Logger, cfg Config) Middleware {
	var rl *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		rl = newRateLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
