package employee

import "context"

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee updates profile fields and basic salary (admin)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
