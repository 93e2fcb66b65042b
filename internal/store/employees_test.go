// ABOUTME: Tests for employee persistence
// ABOUTME: Covers CRUD and not-found behavior

package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndGetEmployee(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	employee := &Employee{
		Name:       "Axa",
		Salary:     300,
		Department: "Technology",
	}

	if err := s.CreateEmployee(ctx, employee); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if employee.ID == 0 {
		t.Fatal("CreateEmployee did not assign an id")
	}

	got, err := s.GetEmployee(ctx, employee.ID)
	if err != nil {
		t.Fatalf("GetEmployee failed: %v", err)
	}
	if got.Name != "Axa" || got.Salary != 300 || got.Department != "Technology" {
		t.Errorf("GetEmployee = %+v, want name/salary/department round-tripped", got)
	}
}

func TestGetEmployee_NotFound(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	_, err := s.GetEmployee(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEmployee error = %v, want ErrNotFound", err)
	}
}

func TestListEmployees(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	for i, name := range []string{"first", "second"} {
		e := &Employee{Name: name, Salary: 100 * (i + 1), Department: "Tech"}
		if err := s.CreateEmployee(ctx, e); err != nil {
			t.Fatalf("CreateEmployee failed: %v", err)
		}
	}

	employees, err := s.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("len(employees) = %d, want 2", len(employees))
	}
	if employees[0].Name != "first" {
		t.Error("employees not ordered by id")
	}
}

func TestUpdateEmployee(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	employee := &Employee{Name: "before", Salary: 100, Department: "Sales"}
	if err := s.CreateEmployee(ctx, employee); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	employee.Name = "after"
	employee.Salary = 200
	if err := s.UpdateEmployee(ctx, employee); err != nil {
		t.Fatalf("UpdateEmployee failed: %v", err)
	}

	got, err := s.GetEmployee(ctx, employee.ID)
	if err != nil {
		t.Fatalf("GetEmployee failed: %v", err)
	}
	if got.Name != "after" || got.Salary != 200 {
		t.Errorf("update not persisted: %+v", got)
	}

	missing := &Employee{ID: 9999, Name: "x", Department: "y"}
	if err := s.UpdateEmployee(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEmployee(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEmployee(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx := context.Background()
	employee := &Employee{Name: "gone", Salary: 1, Department: "Tech"}
	if err := s.CreateEmployee(ctx, employee); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	if err := s.DeleteEmployee(ctx, employee.ID); err != nil {
		t.Fatalf("DeleteEmployee failed: %v", err)
	}

	if _, err := s.GetEmployee(ctx, employee.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEmployee after delete error = %v, want ErrNotFound", err)
	}
}
