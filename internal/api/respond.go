// ABOUTME: JSON response helpers shared by the API handlers
// ABOUTME: All writes are guarded against already-committed responses

package api

import (
	"encoding/json"
	"net/http"

	"github.com/tishida888/employee-api/internal/auth"
)

// jsonContentType is set explicitly on every JSON response.
const jsonContentType = "application/json; charset=utf-8"

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendJSON writes v as a JSON response with the given status. If the
// response has already been committed the write is skipped silently.
func sendJSON(w http.ResponseWriter, status int, v any) {
	if auth.Committed(w) {
		return
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sendJSONError writes a JSON error body with the given status.
func sendJSONError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, ErrorResponse{Error: message})
}
