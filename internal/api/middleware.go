// ABOUTME: Request logging middleware with per-request ids
// ABOUTME: Installs the commit-tracking response writer at the top of the chain

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tishida888/employee-api/internal/auth"
)

// requestLogger wraps the handler chain with commitment tracking, a
// generated request id, and a structured access log line.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		tracked := auth.WrapResponseWriter(w)
		start := time.Now()
		next.ServeHTTP(tracked, r)

		status := tracked.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", time.Since(start),
		)
	})
}
