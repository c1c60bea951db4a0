package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
)

// withLogging logs one line per completed request: method, URI, status,
// duration and response size. Request and response bodies are never logged;
// they may carry credentials or vault ciphertext.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
