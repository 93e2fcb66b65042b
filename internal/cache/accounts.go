// ABOUTME: Read-through cache-aside wrapper for the account store
// ABOUTME: Name lookups pass through uncached so credential checks see current state

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tishida888/employee-api/internal/store"
)

// Accounts wraps an AccountStore with cache-aside semantics for id lookups
// and the list-all entry. GetAccountByName is deliberately uncached: it is
// the login path and must always observe the current record.
type Accounts struct {
	store  store.AccountStore
	byID   *lru.Cache[int64, *store.Account]
	logger *slog.Logger

	mu  sync.Mutex
	all []*store.Account
}

var _ store.AccountStore = (*Accounts)(nil)

// NewAccounts creates an account cache of the given capacity over s.
func NewAccounts(s store.AccountStore, size int) (*Accounts, error) {
	if size <= 0 {
		size = DefaultSize
	}
	byID, err := lru.New[int64, *store.Account](size)
	if err != nil {
		return nil, fmt.Errorf("creating account cache: %w", err)
	}
	return &Accounts{
		store:  s,
		byID:   byID,
		logger: slog.Default().With("component", "cache", "entity", "account"),
	}, nil
}

// GetAccount returns the cached account or loads and populates on miss.
func (c *Accounts) GetAccount(ctx context.Context, id int64) (*store.Account, error) {
	if account, ok := c.byID.Get(id); ok {
		c.logger.Debug("cache hit", "id", id)
		return account, nil
	}

	account, err := c.store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	c.byID.Add(id, account)
	return account, nil
}

// GetAccountByName passes through to the store.
func (c *Accounts) GetAccountByName(ctx context.Context, name string) (*store.Account, error) {
	return c.store.GetAccountByName(ctx, name)
}

// ListAccounts returns the cached list or loads and populates on miss.
func (c *Accounts) ListAccounts(ctx context.Context) ([]*store.Account, error) {
	c.mu.Lock()
	cached := c.all
	c.mu.Unlock()
	if cached != nil {
		c.logger.Debug("cache hit", "key", "all")
		return cached, nil
	}

	accounts, err := c.store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.all = accounts
	c.mu.Unlock()
	return accounts, nil
}

// CreateAccount writes through to the store, caches the new record, and
// invalidates the list entry.
func (c *Accounts) CreateAccount(ctx context.Context, account *store.Account) error {
	if err := c.store.CreateAccount(ctx, account); err != nil {
		return err
	}
	c.byID.Add(account.ID, account)
	c.invalidateList()
	return nil
}

// DeleteAccount writes through to the store and invalidates both the id
// entry and the list entry.
func (c *Accounts) DeleteAccount(ctx context.Context, id int64) error {
	if err := c.store.DeleteAccount(ctx, id); err != nil {
		return err
	}
	c.byID.Remove(id)
	c.invalidateList()
	return nil
}

func (c *Accounts) invalidateList() {
	c.mu.Lock()
	c.all = nil
	c.mu.Unlock()
}
