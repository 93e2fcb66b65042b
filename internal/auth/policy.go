// ABOUTME: Static authorization policy evaluated after the gateway, before handlers
// ABOUTME: Whitelist first, then prefix rules in order, then default-deny

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// Policy errors, logged server-side only.
var (
	ErrMissingCredential = errors.New("no credential on protected route")
	ErrInsufficientRole  = errors.New("insufficient role")
)

// Rule maps a path prefix to a required role. An empty Role means any
// authenticated principal qualifies.
type Rule struct {
	Prefix string
	Role   Role
}

// Policy is an ordered rule table, static for the process lifetime.
// Evaluation order: whitelist (exact or prefix) first, then rules in
// declaration order, then default authenticated-required. First match wins.
type Policy struct {
	whitelist []string
	rules     []Rule
	logger    *slog.Logger
}

// DefaultWhitelist returns the no-auth path patterns: documentation UI,
// generated API docs, static resources, the error path, the login endpoint,
// logout, and health. Entries ending in "/" match as prefixes.
func DefaultWhitelist(apiPath string) []string {
	return []string{
		"/v3/api-docs/",
		"/swagger-ui/",
		"/swagger-resources/",
		"/webjars/",
		"/error/",
		"/images/",
		"/js/",
		"/css/",
		"/health",
		"/logout",
		apiPath + "/token",
	}
}

// DefaultRules returns the role rules: the account-management prefix
// requires admin. Everything unmatched falls to the default
// authenticated-required rule.
func DefaultRules(apiPath string) []Rule {
	return []Rule{
		{Prefix: apiPath + "/account", Role: RoleAdmin},
	}
}

// NewPolicy creates a policy from a whitelist and an ordered rule list.
func NewPolicy(whitelist []string, rules []Rule, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		whitelist: whitelist,
		rules:     rules,
		logger:    logger.With("component", "policy"),
	}
}

// Middleware enforces the rule table. It is the only stage that terminates
// request processing: rejected outcomes become 401, missing principals on
// protected routes become 401, and role mismatches become 403.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.whitelisted(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		outcome := OutcomeFromContext(r.Context())

		if outcome != nil && outcome.Rejection != nil {
			WriteUnauthorized(w, p.logger, outcome.Rejection.Message, ErrInvalidToken)
			return
		}

		var principal *Principal
		if outcome != nil {
			principal = outcome.Principal
		}
		if principal == nil {
			WriteUnauthorized(w, p.logger, "", ErrMissingCredential)
			return
		}

		required := RoleUser
		for _, rule := range p.rules {
			if strings.HasPrefix(r.URL.Path, rule.Prefix) {
				required = rule.Role
				break
			}
		}

		if required != "" && !principal.HasRole(required) {
			p.logger.Debug("access denied", "path", r.URL.Path, "account_id", principal.AccountID, "required_role", required)
			WriteForbidden(w, p.logger, ErrInsufficientRole)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// whitelisted reports whether the path matches a whitelist entry. Entries
// ending in "/" match as prefixes, other entries match exactly.
func (p *Policy) whitelisted(path string) bool {
	for _, pattern := range p.whitelist {
		if strings.HasSuffix(pattern, "/") {
			if strings.HasPrefix(path, pattern) {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
