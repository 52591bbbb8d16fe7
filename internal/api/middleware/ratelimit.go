package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/futig/resignation-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const rateLimitWindow = time.Minute

// RateLimiter counts requests per client IP in fixed one-minute windows.
type RateLimiter struct {
	limit    int
	counters *cache.Cache
	mu       sync.Mutex
}

// NewRateLimiter returns a limiter allowing limit requests per minute per
// client. A limit of zero disables limiting.
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		counters: cache.New(rateLimitWindow, 2*rateLimitWindow),
	}
}

// Allow records one request for key and reports whether it is within the
// limit.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if err := rl.counters.Add(key, 1, cache.DefaultExpiration); err == nil {
		return true
	}

	count, err := rl.counters.IncrementInt(key, 1)
	if err != nil {
		// Expired between Add and Increment.
		rl.counters.Set(key, 1, cache.DefaultExpiration)
		return true
	}
	return count <= rl.limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.Allow(key) {
			ctxzap.Warn(r.Context(), "rate limit exceeded", zap.String("client", key))
			w.Header().Set("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
