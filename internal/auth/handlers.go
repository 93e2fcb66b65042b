// ABOUTME: Failure handlers producing fixed 401/403 responses without sensitive detail
// ABOUTME: Tracks response commitment so handlers never double-write

package auth

import (
	"errors"
	"log/slog"
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter and records whether a response has
// been committed, mirroring the servlet-style isCommitted guard. The API
// server installs it at the top of the middleware chain.
type ResponseWriter struct {
	http.ResponseWriter
	status    int
	committed bool
}

// WrapResponseWriter wraps w for commitment tracking. If w is already
// wrapped it is returned unchanged.
func WrapResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader records the status and marks the response committed.
func (rw *ResponseWriter) WriteHeader(status int) {
	if rw.committed {
		return
	}
	rw.status = status
	rw.committed = true
	rw.ResponseWriter.WriteHeader(status)
}

// Write marks the response committed on first write.
func (rw *ResponseWriter) Write(b []byte) (int, error) {
	if !rw.committed {
		rw.status = http.StatusOK
		rw.committed = true
	}
	return rw.ResponseWriter.Write(b)
}

// Status returns the recorded status code, or 0 if nothing was written.
func (rw *ResponseWriter) Status() int {
	return rw.status
}

// Committed reports whether a response has been written to w. Untracked
// writers report false.
func Committed(w http.ResponseWriter) bool {
	rw, ok := w.(*ResponseWriter)
	return ok && rw.committed
}

// WriteUnauthorized sends a 401 with the given reason phrase. The underlying
// cause is logged at debug level only and never serialized to the client.
// No-ops if the response has already been committed.
func WriteUnauthorized(w http.ResponseWriter, logger *slog.Logger, message string, cause error) {
	if Committed(w) {
		logger.Info("response has already been committed")
		return
	}
	logCause(logger, cause)
	if message == "" {
		message = http.StatusText(http.StatusUnauthorized)
	}
	http.Error(w, message, http.StatusUnauthorized)
}

// WriteForbidden sends a 403 with the fixed reason phrase. Used both for
// insufficient role and for login failures. No-ops if the response has
// already been committed.
func WriteForbidden(w http.ResponseWriter, logger *slog.Logger, cause error) {
	if Committed(w) {
		logger.Info("response has already been committed")
		return
	}
	logCause(logger, cause)
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

// logCause logs the failure cause at debug level, distinguishing the error
// subtype for diagnostics without exposing it to the client.
func logCause(logger *slog.Logger, cause error) {
	if cause == nil {
		return
	}
	switch {
	case errors.Is(cause, ErrExpiredToken):
		logger.Debug("auth failure", "type", "token_expired", "error", cause)
	case errors.Is(cause, ErrInvalidToken):
		logger.Debug("auth failure", "type", "token_invalid", "error", cause)
	case errors.Is(cause, ErrInvalidCredentials):
		logger.Debug("auth failure", "type", "bad_credentials", "error", cause)
	case errors.Is(cause, ErrMissingCredential):
		logger.Debug("auth failure", "type", "missing_credential", "error", cause)
	case errors.Is(cause, ErrInsufficientRole):
		logger.Debug("auth failure", "type", "insufficient_role", "error", cause)
	default:
		logger.Debug("auth failure", "type", "other", "error", cause)
	}
}
