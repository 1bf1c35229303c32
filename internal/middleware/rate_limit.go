package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"shopfloor-tasks/pkg/response"
)

// RateLimit enforces the per-client request budget. A no-op when rate
// limiting is disabled in config.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}
		if !mw.rateLimiter.Allow(clientKey(c)) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", clientKey(c))
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientKey identifies the rate-limit bucket: the worker id when the
// session provides one, the client IP otherwise.
func clientKey(c *gin.Context) string {
	if id := c.GetHeader(workerIDHeader); id != "" {
		return id
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	ip, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
	return ip
}

// rateLimiter keeps one token bucket per client behind an expiring LRU
// so idle clients are evicted automatically.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
