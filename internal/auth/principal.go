// ABOUTME: Principal, roles, and per-request authentication outcome
// ABOUTME: Provides WithOutcome/OutcomeFromContext for propagating auth state via context

package auth

import (
	"context"

	"github.com/tishida888/employee-api/internal/store"
)

// Role is one of a small closed set of authorization roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Implies reports whether holding this role satisfies a requirement for
// the other role. Admin implies user.
func (r Role) Implies(other Role) bool {
	if r == other {
		return true
	}
	return r == RoleAdmin && other == RoleUser
}

// Principal is the resolved identity and role set for the current request
// only. It is derived fresh per authenticated request and never cached
// across requests.
type Principal struct {
	AccountID int64
	Name      string
	Roles     []Role
}

// HasRole reports whether the principal satisfies the required role,
// honoring the implies relation.
func (p *Principal) HasRole(required Role) bool {
	for _, r := range p.Roles {
		if r.Implies(required) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// PrincipalForAccount derives a Principal from an account record.
// The admin flag grants {admin, user}; everyone else gets {user}.
func PrincipalForAccount(account *store.Account) *Principal {
	roles := []Role{RoleUser}
	if account.Admin {
		roles = []Role{RoleAdmin, RoleUser}
	}
	return &Principal{
		AccountID: account.ID,
		Name:      account.Name,
		Roles:     roles,
	}
}

// Rejection records that a presented credential failed verification.
// Message is the client-visible reason phrase; the underlying cause is
// logged server-side only.
type Rejection struct {
	Message string
}

// Outcome is the gateway's annotation for a single request. Exactly one of
// three states holds: anonymous (both fields nil), authenticated (Principal
// set), or rejected (Rejection set). The gateway only annotates; the
// authorization policy is the sole stage that terminates a request.
type Outcome struct {
	Principal *Principal
	Rejection *Rejection
}

// outcomeKey is the key type for storing an Outcome in context.Context.
type outcomeKey struct{}

// WithOutcome returns a new context with the authentication outcome attached.
func WithOutcome(ctx context.Context, outcome *Outcome) context.Context {
	return context.WithValue(ctx, outcomeKey{}, outcome)
}

// OutcomeFromContext retrieves the Outcome from the context, returning nil
// if the gateway has not run.
func OutcomeFromContext(ctx context.Context) *Outcome {
	val := ctx.Value(outcomeKey{})
	if val == nil {
		return nil
	}
	outcome, ok := val.(*Outcome)
	if !ok {
		return nil
	}
	return outcome
}

// PrincipalFromContext retrieves the authenticated Principal from the
// context, returning nil for anonymous or rejected requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	outcome := OutcomeFromContext(ctx)
	if outcome == nil {
		return nil
	}
	return outcome.Principal
}
