// ABOUTME: Shared test fixtures for the auth package
// ABOUTME: In-memory account store and helpers

package auth

import (
	"context"

	"github.com/tishida888/employee-api/internal/store"
)

// mockAccounts is an in-memory AccountStore for tests.
type mockAccounts struct {
	accounts []*store.Account
	err      error
}

func (m *mockAccounts) GetAccount(ctx context.Context, id int64) (*store.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockAccounts) GetAccountByName(ctx context.Context, name string) (*store.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, store.ErrNotFound
}

// mustHash digests a password or panics; for fixtures only.
func mustHash(raw string) string {
	digest, err := HashPassword(raw)
	if err != nil {
		panic(err)
	}
	return digest
}
