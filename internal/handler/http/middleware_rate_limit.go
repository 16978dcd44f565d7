package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/utils"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"

	defaultRateLimitWindow = time.Minute
	msgTooManyRequests     = "Too many requests"
)

// withRateLimit counts requests per client IP in fixed windows. When the
// limiter itself fails the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.rateLimiter == nil || h.cfg.RateLimit <= 0 {
		return next
	}

	window := h.cfg.RateLimitWindow
	if window <= 0 {
		window = defaultRateLimitWindow
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := h.rateLimiter.Allow(r.Context(), clientIP(r), h.cfg.RateLimit, window)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("rate limiter unavailable, letting request through")
			next.ServeHTTP(w, r)
			return
		}

		resetSeconds := strconv.Itoa(int(math.Ceil(result.ResetAfter.Seconds())))

		w.Header().Set(headerRateLimitLimit, strconv.Itoa(result.Limit))
		w.Header().Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
		w.Header().Set(headerRateLimitReset, resetSeconds)

		if !result.Allowed {
			w.Header().Set("Retry-After", resetSeconds)
			utils.WriteMessage(w, msgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
