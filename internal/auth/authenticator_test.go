// ABOUTME: Tests for name/password authentication
// ABOUTME: Covers digest comparison, unknown accounts, and role derivation

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/tishida888/employee-api/internal/store"
)

func TestAuthenticate_Success(t *testing.T) {
	accounts := &mockAccounts{accounts: []*store.Account{
		{ID: 1, Name: "admin1", PasswordDigest: mustHash("admin1"), Admin: true},
	}}
	a := NewAuthenticator(accounts, nil)

	principal, err := a.Authenticate(context.Background(), "admin1", "admin1")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	if principal.AccountID != 1 {
		t.Errorf("AccountID = %d, want 1", principal.AccountID)
	}
	if principal.Name != "admin1" {
		t.Errorf("Name = %q, want %q", principal.Name, "admin1")
	}
	if !principal.HasRole(RoleAdmin) || !principal.HasRole(RoleUser) {
		t.Errorf("admin principal roles = %v, want admin and user", principal.Roles)
	}
}

func TestAuthenticate_CaseSensitivePassword(t *testing.T) {
	accounts := &mockAccounts{accounts: []*store.Account{
		{ID: 1, Name: "bob", PasswordDigest: mustHash("secret")},
	}}
	a := NewAuthenticator(accounts, nil)

	if _, err := a.Authenticate(context.Background(), "bob", "secret"); err != nil {
		t.Errorf("Authenticate(secret) error = %v, want success", err)
	}

	_, err := a.Authenticate(context.Background(), "bob", "Secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate(Secret) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_UnknownAccount(t *testing.T) {
	a := NewAuthenticator(&mockAccounts{}, nil)

	_, err := a.Authenticate(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_NonAdminRoles(t *testing.T) {
	accounts := &mockAccounts{accounts: []*store.Account{
		{ID: 2, Name: "user1", PasswordDigest: mustHash("user1"), Admin: false},
	}}
	a := NewAuthenticator(accounts, nil)

	principal, err := a.Authenticate(context.Background(), "user1", "user1")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	if principal.HasRole(RoleAdmin) {
		t.Error("non-admin principal should not have admin role")
	}
	if !principal.HasRole(RoleUser) {
		t.Error("principal should have user role")
	}
}

func TestRoleImplies(t *testing.T) {
	if !RoleAdmin.Implies(RoleUser) {
		t.Error("admin should imply user")
	}
	if !RoleAdmin.Implies(RoleAdmin) {
		t.Error("admin should imply admin")
	}
	if RoleUser.Implies(RoleAdmin) {
		t.Error("user should not imply admin")
	}
}
