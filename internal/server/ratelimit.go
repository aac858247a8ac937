package server

import (
	"net/http"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/metrics"
)

// IPRateLimiter keeps a token bucket per client IP. Idle buckets expire.
type IPRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// NewIPRateLimiter allows rps sustained requests per IP with bursts of burst
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](TrackedClientsCapacity, nil, LimiterIdleTTL),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether ip may make a request now
func (l *IPRateLimiter) Allow(ip string) bool {
	lim, ok := l.limiters.Get(ip)
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		// a racing request may also create one; the last Add wins and at most one burst leaks
		l.limiters.Add(ip, lim)
	}
	return lim.Allow()
}

// RateLimitMiddleware rejects clients that exceed their bucket with 429
func RateLimitMiddleware(trustedProxies []string, limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range UnlimitedPaths {
				if r.URL.Path == p {
					next.ServeHTTP(w, r)
					return
				}
			}

			ip := extractIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				metrics.RateLimitedRequests.Inc()
				logger.FromContext(r.Context()).Debug(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
