// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Token bucket per client IP, with idle buckets expiring from a go-cache store

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per key. A bucket holds limit
// tokens and refills completely over window.
type RateLimiter struct {
	buckets    *cache.Cache
	limit      int
	window     time.Duration
	every      rate.Limit
	trustProxy bool
}

// RateLimiterOption configures a RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxy keys clients by X-Forwarded-For / X-Real-IP. Only use it
// when every request passes through a proxy that overwrites those headers;
// otherwise a client can pick a fresh key per request.
func WithTrustedProxy() RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.trustProxy = true
	}
}

// NewRateLimiter creates a new rate limiter. limit is raised to 1 and window
// to one second when smaller. Clients are keyed by the connection's remote
// address unless WithTrustedProxy is given.
func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	rl := &RateLimiter{
		buckets: cache.New(window, window),
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(limit)),
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// clientKey is the bucket key for r
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		return extractIP(r)
	}
	return remoteHost(r)
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	return rl.bucket(key).Allow()
}

// bucket returns the limiter for key, creating it on first use. A bucket
// that has been idle for a full window is full again, so letting it expire
// loses nothing.
func (rl *RateLimiter) bucket(key string) *rate.Limiter {
	if v, ok := rl.buckets.Get(key); ok {
		rl.buckets.SetDefault(key, v)
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.every, rl.limit)
	if err := rl.buckets.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// lost the race to another request for the same key
		if v, ok := rl.buckets.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// extractIP gets the client IP from the request, preferring proxy headers.
// The headers are client controlled unless a trusted proxy sets them.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return remoteHost(r)
}

// remoteHost is the host part of the connection's remote address
func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(limiter.limit)
	window := limiter.window.String()
	retryAfter := strconv.Itoa(int(limiter.window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Window", window)

			if !limiter.Allow(limiter.clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfter)
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
