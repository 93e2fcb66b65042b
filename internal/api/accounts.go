// ABOUTME: Account management handlers for /api/v1/account (admin only)
// ABOUTME: Passwords are digested with bcrypt before storage and never echoed back

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tishida888/employee-api/internal/auth"
	"github.com/tishida888/employee-api/internal/store"
)

// AccountRequest is the JSON request body for creating an account.
type AccountRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// AccountResponse is the JSON shape of an account. The password digest is
// deliberately absent.
type AccountResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

func accountResponse(a *store.Account) AccountResponse {
	return AccountResponse{
		ID:    a.ID,
		Name:  a.Name,
		Admin: a.Admin,
	}
}

// handleAccounts handles GET (list) and POST (create) on /api/v1/account.
func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		accounts, err := s.accounts.ListAccounts(r.Context())
		if err != nil {
			s.logger.Error("failed to list accounts", "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to get all accounts. Please contact support.")
			return
		}

		response := make([]AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			response = append(response, accountResponse(a))
		}
		sendJSON(w, http.StatusOK, response)

	case http.MethodPost:
		var req AccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Name == "" {
			sendJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		if req.Password == "" {
			sendJSONError(w, http.StatusBadRequest, "password is required")
			return
		}

		digest, err := auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to save account. Please contact support.")
			return
		}

		account := &store.Account{
			Name:           req.Name,
			PasswordDigest: digest,
			Admin:          req.Admin,
		}
		if err := s.accounts.CreateAccount(r.Context(), account); err != nil {
			if errors.Is(err, store.ErrNameExists) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Account name already taken: %s", req.Name))
				return
			}
			s.logger.Error("failed to save account", "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to save account. Please contact support.")
			return
		}
		sendJSON(w, http.StatusOK, accountResponse(account))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAccountByID handles GET and DELETE on /api/v1/account/{id}.
func (s *Server) handleAccountByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, APIPath+"/account/"), 10, 64)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		account, err := s.accounts.GetAccount(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Account Not Found. ID = %d", id))
				return
			}
			s.logger.Error("failed to get account", "id", id, "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to get account. Please contact support.")
			return
		}
		sendJSON(w, http.StatusOK, accountResponse(account))

	case http.MethodDelete:
		if err := s.accounts.DeleteAccount(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Account Not Found. ID = %d", id))
				return
			}
			s.logger.Error("failed to delete account", "id", id, "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to delete account. Please contact support.")
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
