package middleware

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/storefront/pkg/limiter"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// RateLimit limits each client IP to max requests per window, counting hits
// in the given store. Store errors fail open.
func RateLimit(store limiter.Store, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			n, err := store.Incr(r.Context(), ip, window)
			if err == nil && n > int64(max) {
				metrics.RateLimited.Inc()
				http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
