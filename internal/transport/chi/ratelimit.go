package chi

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests above rps requests per second (burst rps) with 429.
// rps <= 0 disables limiting.
func RateLimitMiddleware(rps int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		limiter := rate.NewLimiter(rate.Limit(rps), rps)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isExempt(r) && !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
