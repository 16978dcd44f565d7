package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured browser origins to call the API. It is a
// pass-through when no origins are configured.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	if len(h.cfg.AllowedOrigins) == 0 {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{
			traceIDHeader,
			headerRateLimitLimit,
			headerRateLimitRemaining,
			headerRateLimitReset,
			"Retry-After",
		},
		MaxAge: 300,
	})(next)
}
