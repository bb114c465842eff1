package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/pkg/ratelimit"
)

// RateLimitMiddleware, IP bazlı istek sınırlaması.
type RateLimitMiddleware struct {
	limiter *ratelimit.IPRateLimiter
	trusted ratelimit.TrustedProxies
}

// NewRateLimitMiddleware, constructor. limiter nil ise rate limiting kapalıdır.
// trusted boşsa client IP her zaman bağlantının kendisinden (RemoteAddr) alınır.
func NewRateLimitMiddleware(limiter *ratelimit.IPRateLimiter, trusted ratelimit.TrustedProxies) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, trusted: trusted}
}

// Limit, limit aşıldığında 429 + Retry-After döner.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := ratelimit.ExtractIP(r, m.trusted)
		if !m.limiter.Allow(ip) {
			retryAfter := m.limiter.RetryAfterSeconds(ip)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.Error(w, fmt.Errorf("%w: retry after %d second(s)", pkg.ErrTooManyRequests, retryAfter))
			return
		}

		next.ServeHTTP(w, r)
	})
}
