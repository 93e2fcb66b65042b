// Package store provides persistent storage for employee-api using SQLite.
//
// # Data Models
//
//   - Account: API login account with a bcrypt password digest and an admin
//     flag. Login names are unique. Domain equality is (name, admin), not id;
//     see Account.Equal.
//   - Employee: the resource the API manages (name, salary, department).
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// The schema is created automatically on open.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: requested entity does not exist
//   - ErrNameExists: account login name is already taken
//
// All methods accept context.Context for cancellation support.
package store
