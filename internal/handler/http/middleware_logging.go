package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. 5xx responses are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.Logger.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_ip", clientIP(r)).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
