package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by ID, returning ErrEmployeeNotFound if absent
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, returning ErrEmployeeNotFound if absent
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Create creates a new employee record
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Update updates profile fields and basic salary
	Update(ctx context.Context, emp Employee) (Employee, error)

	// List retrieves all employees ordered by last name
	List(ctx context.Context) ([]Employee, error)
}
