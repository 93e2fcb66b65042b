// ABOUTME: Employee CRUD handlers for /api/v1/employee
// ABOUTME: Reads go through the cache-aside wrapper; writes invalidate it

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tishida888/employee-api/internal/store"
)

// EmployeeRequest is the JSON request body for creating or updating an employee.
type EmployeeRequest struct {
	Name       string `json:"name"`
	Salary     int    `json:"salary"`
	Department string `json:"department"`
}

// EmployeeResponse is the JSON shape of an employee.
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Salary     int    `json:"salary"`
	Department string `json:"department"`
}

func employeeResponse(e *store.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Salary:     e.Salary,
		Department: e.Department,
	}
}

// handleEmployees handles GET (list) and POST (create) on /api/v1/employee.
func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		employees, err := s.employees.ListEmployees(r.Context())
		if err != nil {
			s.logger.Error("failed to list employees", "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to get all employees. Please contact support.")
			return
		}

		response := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			response = append(response, employeeResponse(e))
		}
		sendJSON(w, http.StatusOK, response)

	case http.MethodPost:
		req, err := parseEmployeeRequest(r)
		if err != nil {
			sendJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		employee := &store.Employee{
			Name:       req.Name,
			Salary:     req.Salary,
			Department: req.Department,
		}
		if err := s.employees.CreateEmployee(r.Context(), employee); err != nil {
			s.logger.Error("failed to save employee", "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to save employee. Please contact support.")
			return
		}
		sendJSON(w, http.StatusOK, employeeResponse(employee))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleEmployeeByID handles GET, PUT and DELETE on /api/v1/employee/{id}.
func (s *Server) handleEmployeeByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, APIPath+"/employee/"), 10, 64)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		employee, err := s.employees.GetEmployee(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Employee Not Found. ID = %d", id))
				return
			}
			s.logger.Error("failed to get employee", "id", id, "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to get employee. Please contact support.")
			return
		}
		sendJSON(w, http.StatusOK, employeeResponse(employee))

	case http.MethodPut:
		req, err := parseEmployeeRequest(r)
		if err != nil {
			sendJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		employee := &store.Employee{
			ID:         id,
			Name:       req.Name,
			Salary:     req.Salary,
			Department: req.Department,
		}
		if err := s.employees.UpdateEmployee(r.Context(), employee); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Employee Not Found. ID = %d", id))
				return
			}
			s.logger.Error("failed to update employee", "id", id, "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to update employee. Please contact support.")
			return
		}
		sendJSON(w, http.StatusOK, employeeResponse(employee))

	case http.MethodDelete:
		if err := s.employees.DeleteEmployee(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendJSONError(w, http.StatusBadRequest, fmt.Sprintf("Employee Not Found. ID = %d", id))
				return
			}
			s.logger.Error("failed to delete employee", "id", id, "error", err)
			sendJSONError(w, http.StatusInternalServerError, "Failed to delete employee. Please contact support.")
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// parseEmployeeRequest decodes and validates an employee request body.
func parseEmployeeRequest(r *http.Request) (*EmployeeRequest, error) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Department == "" {
		return nil, errors.New("department is required")
	}
	if req.Salary < 0 {
		return nil, errors.New("salary must not be negative")
	}
	return &req, nil
}
