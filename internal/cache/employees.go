// ABOUTME: Read-through cache-aside wrapper for the employee store
// ABOUTME: LRU per-id entries plus a single list-all slot, invalidated on writes

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tishida888/employee-api/internal/store"
)

// DefaultSize is the per-id LRU capacity used when none is given.
const DefaultSize = 1024

// Employees wraps an EmployeeStore with explicit cache-aside semantics:
// Get populates on miss, writes and deletes invalidate the id key and the
// list-all entry.
type Employees struct {
	store  store.EmployeeStore
	byID   *lru.Cache[int64, *store.Employee]
	logger *slog.Logger

	mu  sync.Mutex
	all []*store.Employee // nil when the list entry is not populated
}

// Ensure the wrapper is a drop-in EmployeeStore.
var _ store.EmployeeStore = (*Employees)(nil)

// NewEmployees creates an employee cache of the given capacity over s.
func NewEmployees(s store.EmployeeStore, size int) (*Employees, error) {
	if size <= 0 {
		size = DefaultSize
	}
	byID, err := lru.New[int64, *store.Employee](size)
	if err != nil {
		return nil, fmt.Errorf("creating employee cache: %w", err)
	}
	return &Employees{
		store:  s,
		byID:   byID,
		logger: slog.Default().With("component", "cache", "entity", "employee"),
	}, nil
}

// GetEmployee returns the cached employee or loads and populates on miss.
func (c *Employees) GetEmployee(ctx context.Context, id int64) (*store.Employee, error) {
	if employee, ok := c.byID.Get(id); ok {
		c.logger.Debug("cache hit", "id", id)
		return employee, nil
	}

	employee, err := c.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	c.byID.Add(id, employee)
	return employee, nil
}

// ListEmployees returns the cached list or loads and populates on miss.
func (c *Employees) ListEmployees(ctx context.Context) ([]*store.Employee, error) {
	c.mu.Lock()
	cached := c.all
	c.mu.Unlock()
	if cached != nil {
		c.logger.Debug("cache hit", "key", "all")
		return cached, nil
	}

	employees, err := c.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.all = employees
	c.mu.Unlock()
	return employees, nil
}

// CreateEmployee writes through to the store, caches the new record, and
// invalidates the list entry.
func (c *Employees) CreateEmployee(ctx context.Context, employee *store.Employee) error {
	if err := c.store.CreateEmployee(ctx, employee); err != nil {
		return err
	}
	c.byID.Add(employee.ID, employee)
	c.invalidateList()
	return nil
}

// UpdateEmployee writes through to the store, refreshes the id entry, and
// invalidates the list entry.
func (c *Employees) UpdateEmployee(ctx context.Context, employee *store.Employee) error {
	if err := c.store.UpdateEmployee(ctx, employee); err != nil {
		return err
	}
	c.byID.Add(employee.ID, employee)
	c.invalidateList()
	return nil
}

// DeleteEmployee writes through to the store and invalidates both the id
// entry and the list entry.
func (c *Employees) DeleteEmployee(ctx context.Context, id int64) error {
	if err := c.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	c.byID.Remove(id)
	c.invalidateList()
	return nil
}

func (c *Employees) invalidateList() {
	c.mu.Lock()
	c.all = nil
	c.mu.Unlock()
}
