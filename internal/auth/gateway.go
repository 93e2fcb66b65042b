// ABOUTME: Request gateway middleware that verifies bearer tokens ahead of routing
// ABOUTME: Annotates the request context with an Outcome; never writes the response

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/tishida888/employee-api/internal/store"
)

// bearerPrefix is the literal prefix of a bearer Authorization header.
const bearerPrefix = "Bearer "

// TokenExpiredMessage is the client-visible reason for an expired token.
const TokenExpiredMessage = "Token Expired. Please try with a new token."

// Gateway intercepts every inbound request, verifies a bearer credential if
// one is present, and attaches the resulting Outcome to the request context.
// It holds no mutable state: the codec's secret and the store handle are
// immutable after construction, so the middleware is safe for concurrent use.
type Gateway struct {
	codec    *TokenCodec
	accounts AccountStore
	logger   *slog.Logger
}

// NewGateway creates the authentication gateway.
func NewGateway(codec *TokenCodec, accounts AccountStore, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		codec:    codec,
		accounts: accounts,
		logger:   logger.With("component", "gateway"),
	}
}

// Middleware runs the per-request state machine:
//
//	no token            -> anonymous pass-through
//	token present       -> verify -> authenticated | rejected
//
// The gateway only annotates the context. Whether an anonymous or rejected
// request is fatal is decided downstream by the authorization policy, which
// is the sole stage that terminates request processing.
func (g *Gateway) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outcome := g.resolve(r)
		next.ServeHTTP(w, r.WithContext(WithOutcome(r.Context(), outcome)))
	})
}

// resolve runs verification for a single request and produces its Outcome.
func (g *Gateway) resolve(r *http.Request) *Outcome {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		// A missing credential is a legitimate anonymous state, not an error.
		return &Outcome{}
	}

	token := strings.TrimPrefix(header, bearerPrefix)

	claims, err := g.codec.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, ErrExpiredToken):
			g.logger.Debug("token rejected", "reason", "expired")
			return &Outcome{Rejection: &Rejection{Message: TokenExpiredMessage}}
		default:
			// No detail about why verification failed beyond expired vs not.
			g.logger.Debug("token rejected", "reason", "invalid", "error", err)
			return &Outcome{Rejection: &Rejection{Message: http.StatusText(http.StatusUnauthorized)}}
		}
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		g.logger.Debug("token subject not an account id", "subject", claims.Subject)
		return &Outcome{}
	}

	account, err := g.accounts.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Subject no longer resolves to an account: proceed unauthenticated
			// and let the policy judge the request like any anonymous one.
			g.logger.Debug("token subject unknown", "account_id", accountID)
			return &Outcome{}
		}
		g.logger.Warn("credential store lookup failed", "error", err)
		return &Outcome{}
	}

	return &Outcome{Principal: PrincipalForAccount(account)}
}
