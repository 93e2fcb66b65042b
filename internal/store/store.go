// ABOUTME: Store interface and data types for employee-api persistence
// ABOUTME: Defines Account, Employee structs and the store interfaces

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrNameExists is returned when creating an account whose login name is taken
var ErrNameExists = errors.New("account name already exists")

// Account is an API login account. Only registered accounts can work with
// employee data; accounts with the admin flag can also manage the account
// list itself.
type Account struct {
	ID             int64
	Name           string
	PasswordDigest string
	Admin          bool
	CreatedAt      time.Time
}

// Equal reports domain equality for accounts, which is defined by
// (name, admin) rather than by id. Callers must not rely on id-based
// equality for accounts.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name && a.Admin == other.Admin
}

// Employee is the resource this API manages.
type Employee struct {
	ID         int64
	Name       string
	Salary     int
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AccountStore defines account persistence operations.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, id int64) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// EmployeeStore defines employee persistence operations.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}
