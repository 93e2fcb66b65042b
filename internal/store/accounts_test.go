// ABOUTME: Tests for account persistence
// ABOUTME: Covers CRUD, unique names, first-match name lookup, and domain equality

package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	account := &Account{
		Name:           "admin1",
		PasswordDigest: "$2a$10$fakedigestfortesting",
		Admin:          true,
	}

	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("CreateAccount did not assign an id")
	}

	got, err := s.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if got.Name != "admin1" {
		t.Errorf("Name = %q, want %q", got.Name, "admin1")
	}
	if !got.Admin {
		t.Error("Admin = false, want true")
	}
	if got.PasswordDigest != account.PasswordDigest {
		t.Error("PasswordDigest not round-tripped")
	}
}

func TestCreateAccount_DuplicateName(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	if err := s.CreateAccount(ctx, &Account{Name: "bob", PasswordDigest: "x"}); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	err := s.CreateAccount(ctx, &Account{Name: "bob", PasswordDigest: "y"})
	if !errors.Is(err, ErrNameExists) {
		t.Errorf("CreateAccount duplicate error = %v, want ErrNameExists", err)
	}
}

func TestGetAccountByName(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	account := &Account{Name: "user1", PasswordDigest: "x", Admin: false}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	got, err := s.GetAccountByName(ctx, "user1")
	if err != nil {
		t.Fatalf("GetAccountByName failed: %v", err)
	}
	if got.ID != account.ID {
		t.Errorf("ID = %d, want %d", got.ID, account.ID)
	}

	if _, err := s.GetAccountByName(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAccountByName(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestListAccounts(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		if err := s.CreateAccount(ctx, &Account{Name: name, PasswordDigest: "x"}); err != nil {
			t.Fatalf("CreateAccount(%q) failed: %v", name, err)
		}
	}

	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("len(accounts) = %d, want 3", len(accounts))
	}
	if accounts[0].Name != "a" || accounts[2].Name != "c" {
		t.Error("accounts not ordered by id")
	}
}

func TestDeleteAccount(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	account := &Account{Name: "victim", PasswordDigest: "x"}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if err := s.DeleteAccount(ctx, account.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	if _, err := s.GetAccount(ctx, account.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAccount after delete error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteAccount(ctx, account.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteAccount again error = %v, want ErrNotFound", err)
	}
}

func TestAccountEqual(t *testing.T) {
	// Domain equality is (name, admin), not id.
	a := &Account{ID: 1, Name: "axa", Admin: true}
	b := &Account{ID: 99, Name: "axa", Admin: true}
	c := &Account{ID: 1, Name: "axa", Admin: false}

	if !a.Equal(b) {
		t.Error("accounts with same name/admin should be equal regardless of id")
	}
	if a.Equal(c) {
		t.Error("accounts differing in admin flag should not be equal")
	}
	if a.Equal(nil) {
		t.Error("non-nil account should not equal nil")
	}
}
