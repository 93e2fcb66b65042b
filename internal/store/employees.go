// ABOUTME: Employee entity store methods for the CRUD API
// ABOUTME: Employees carry name, salary and department

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateEmployee inserts a new employee and assigns its id.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, employee *Employee) error {
	now := time.Now().UTC()
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = now
	}
	employee.UpdatedAt = now

	query := `
		INSERT INTO employees (name, salary, department, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		employee.Name,
		employee.Salary,
		employee.Department,
		employee.CreatedAt.UTC().Format(time.RFC3339),
		employee.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting assigned employee id: %w", err)
	}
	employee.ID = id

	s.logger.Info("created employee", "id", employee.ID, "name", employee.Name)
	return nil
}

// GetEmployee retrieves an employee by id.
func (s *SQLiteStore) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	query := `
		SELECT id, name, salary, department, created_at, updated_at
		FROM employees
		WHERE id = ?
	`

	return s.scanEmployee(s.db.QueryRowContext(ctx, query, id))
}

// ListEmployees returns all employees ordered by id.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `
		SELECT id, name, salary, department, created_at, updated_at
		FROM employees
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*Employee
	for rows.Next() {
		var employee Employee
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Salary,
			&employee.Department,
			&createdAtStr,
			&updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		if employee.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if employee.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}

		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}

	return employees, nil
}

// UpdateEmployee updates all mutable fields of an employee by id.
func (s *SQLiteStore) UpdateEmployee(ctx context.Context, employee *Employee) error {
	employee.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE employees
		SET name = ?, salary = ?, department = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		employee.Name,
		employee.Salary,
		employee.Department,
		employee.UpdatedAt.UTC().Format(time.RFC3339),
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Info("updated employee", "id", employee.ID)
	return nil
}

// DeleteEmployee removes an employee by id.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted employee", "id", id)
	return nil
}

// scanEmployee scans a single employee row.
func (s *SQLiteStore) scanEmployee(row *sql.Row) (*Employee, error) {
	var employee Employee
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Salary,
		&employee.Department,
		&createdAtStr,
		&updatedAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying employee: %w", err)
	}

	if employee.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if employee.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &employee, nil
}
