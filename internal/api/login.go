// ABOUTME: Login and logout handlers: credential verification and token issuance
// ABOUTME: Success writes {"token": "Bearer <jwt>"} directly to the response stream

package api

import (
	"net/http"
	"strconv"

	"github.com/tishida888/employee-api/internal/auth"
)

// TokenResponse is the JSON response for a successful login. The token
// value includes the "Bearer " prefix, ready for the Authorization header.
type TokenResponse struct {
	Token string `json:"token"`
}

// handleToken handles POST /api/v1/token with form credentials name and
// password. Any authentication failure, including malformed input, produces
// the same 403 reason phrase.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		auth.WriteForbidden(w, s.logger, err)
		return
	}

	name := r.PostFormValue("name")
	password := r.PostFormValue("password")
	if name == "" || password == "" {
		auth.WriteForbidden(w, s.logger, auth.ErrInvalidCredentials)
		return
	}

	principal, err := s.authenticator.Authenticate(r.Context(), name, password)
	if err != nil {
		auth.WriteForbidden(w, s.logger, err)
		return
	}

	token, err := s.codec.Issue(strconv.FormatInt(principal.AccountID, 10), s.tokenLifetime)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		sendJSONError(w, http.StatusInternalServerError, "Token generation failure on internal")
		return
	}

	s.logger.Debug("issued token", "name", principal.Name)
	sendJSON(w, http.StatusOK, TokenResponse{Token: "Bearer " + token})
}

// handleLogout handles POST /logout. The scheme is stateless, so there is
// no server-side session to invalidate; the 200 is advisory to the client
// to discard its token.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}
