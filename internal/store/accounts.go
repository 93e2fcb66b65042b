// ABOUTME: Account entity store methods for credential lookup and management
// ABOUTME: Accounts hold login name, password digest and the admin flag

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateAccount inserts a new account and assigns its id.
// The account's PasswordDigest must already be hashed; raw passwords are
// never stored.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *Account) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO accounts (name, password_digest, admin, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		account.Name,
		account.PasswordDigest,
		account.Admin,
		account.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrNameExists
		}
		return fmt.Errorf("inserting account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting assigned account id: %w", err)
	}
	account.ID = id

	s.logger.Info("created account", "id", account.ID, "name", account.Name, "admin", account.Admin)
	return nil
}

// GetAccount retrieves an account by id.
func (s *SQLiteStore) GetAccount(ctx context.Context, id int64) (*Account, error) {
	query := `
		SELECT id, name, password_digest, admin, created_at
		FROM accounts
		WHERE id = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

// GetAccountByName retrieves an account by login name. If duplicates were
// ever allowed into the table, the first by id wins.
func (s *SQLiteStore) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	query := `
		SELECT id, name, password_digest, admin, created_at
		FROM accounts
		WHERE name = ?
		ORDER BY id ASC
		LIMIT 1
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, name))
}

// ListAccounts returns all accounts ordered by id.
func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]*Account, error) {
	query := `
		SELECT id, name, password_digest, admin, created_at
		FROM accounts
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		var account Account
		var createdAtStr string

		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.PasswordDigest,
			&account.Admin,
			&createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		account.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accounts, nil
}

// DeleteAccount removes an account by id.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted account", "id", id)
	return nil
}

// scanAccount scans a single account row.
func (s *SQLiteStore) scanAccount(row *sql.Row) (*Account, error) {
	var account Account
	var createdAtStr string

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.PasswordDigest,
		&account.Admin,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying account: %w", err)
	}

	account.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &account, nil
}
