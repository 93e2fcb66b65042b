// ABOUTME: HTTP server wiring for the employee API
// ABOUTME: Builds the middleware chain: request log -> gateway -> policy -> handlers

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tishida888/employee-api/internal/auth"
	"github.com/tishida888/employee-api/internal/cache"
	"github.com/tishida888/employee-api/internal/config"
	"github.com/tishida888/employee-api/internal/store"
)

// APIPath is the base path for versioned API endpoints.
const APIPath = "/api/v1"

// Server exposes the employee API over HTTP. All authentication state is
// request-scoped; the server itself holds only immutable configuration and
// read-mostly store handles.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	accounts  store.AccountStore
	employees store.EmployeeStore

	authenticator *auth.Authenticator
	codec         *auth.TokenCodec
	gateway       *auth.Gateway
	policy        *auth.Policy

	tokenLifetime time.Duration
	httpServer    *http.Server
}

// New creates a server over the given store. The token codec, gateway,
// policy, and cache-aside wrappers are constructed here; a missing signing
// secret fails construction.
func New(cfg *config.Config, logger *slog.Logger, sqlStore *store.SQLiteStore) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	codec, err := auth.NewTokenCodec([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("creating token codec: %w", err)
	}

	employees, err := cache.NewEmployees(sqlStore, cache.DefaultSize)
	if err != nil {
		return nil, err
	}
	accounts, err := cache.NewAccounts(sqlStore, cache.DefaultSize)
	if err != nil {
		return nil, err
	}

	// The gateway and authenticator read the raw store: credential checks
	// must always observe the current account record.
	return &Server{
		cfg:           cfg,
		logger:        logger.With("component", "api"),
		accounts:      accounts,
		employees:     employees,
		authenticator: auth.NewAuthenticator(sqlStore, logger),
		codec:         codec,
		gateway:       auth.NewGateway(codec, sqlStore, logger),
		policy:        auth.NewPolicy(auth.DefaultWhitelist(APIPath), auth.DefaultRules(APIPath), logger),
		tokenLifetime: cfg.Auth.TokenLifetime(),
	}, nil
}

// Handler assembles the route mux and the middleware chain. The order is
// fixed: commitment tracking and request logging outermost, then the
// gateway (annotates), then the policy (terminates), then handlers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(APIPath+"/token", s.handleToken)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/health", s.handleHealth)

	mux.HandleFunc(APIPath+"/employee", s.handleEmployees)
	mux.HandleFunc(APIPath+"/employee/", s.handleEmployeeByID)

	mux.HandleFunc(APIPath+"/account", s.handleAccounts)
	mux.HandleFunc(APIPath+"/account/", s.handleAccountByID)

	var handler http.Handler = mux
	handler = s.policy.Middleware(handler)
	handler = s.gateway.Middleware(handler)
	handler = s.requestLogger(handler)
	return handler
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Server.HTTPAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
