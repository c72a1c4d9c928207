package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"draftzi-backend/internal/cache"
)

const (
	loginLimit     = 5
	loginWindow    = time.Minute
	registerLimit  = 10
	registerWindow = time.Minute
)

// RateLimitLogin caps login attempts per client IP. Counter errors fail open
// so a degraded Redis never locks everyone out.
func RateLimitLogin(cacheClient cache.Client) func(http.Handler) http.Handler {
	return rateLimit(cacheClient, "rl:login:", loginLimit, loginWindow)
}

func RateLimitRegister(cacheClient cache.Client) func(http.Handler) http.Handler {
	return rateLimit(cacheClient, "rl:register:", registerLimit, registerWindow)
}

func rateLimit(cacheClient cache.Client, prefix string, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := prefix + ClientIP(r)
			count, err := cacheClient.IncrWithTTL(key, window)
			if err == nil && count > limit {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP resolves the caller address, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
