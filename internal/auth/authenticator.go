// ABOUTME: Name/password verification against the account store
// ABOUTME: Produces a Principal on success using bcrypt digest comparison

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/tishida888/employee-api/internal/store"
)

// ErrInvalidCredentials is returned for any login failure. Lookup misses and
// digest mismatches are deliberately indistinguishable to avoid user
// enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountStore is the credential store slice the auth package depends on.
type AccountStore interface {
	GetAccount(ctx context.Context, id int64) (*store.Account, error)
	GetAccountByName(ctx context.Context, name string) (*store.Account, error)
}

// Authenticator verifies login credentials against the account store.
type Authenticator struct {
	accounts AccountStore
	logger   *slog.Logger
}

// NewAuthenticator creates an authenticator backed by the given account store.
func NewAuthenticator(accounts AccountStore, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		accounts: accounts,
		logger:   logger.With("component", "auth"),
	}
}

// Authenticate verifies a login-name/password pair and produces a Principal
// on success. The stored digest is compared with bcrypt, which performs a
// constant-time comparison internally.
func (a *Authenticator) Authenticate(ctx context.Context, name, password string) (*Principal, error) {
	account, err := a.accounts.GetAccountByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.logger.Debug("authentication failure", "reason", "unknown account")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest), []byte(password)); err != nil {
		a.logger.Debug("authentication failure", "reason", "digest mismatch", "name", name)
		return nil, ErrInvalidCredentials
	}

	return PrincipalForAccount(account), nil
}

// HashPassword digests a raw password for storage. The raw value is never
// persisted.
func HashPassword(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}
