package employee

import (
	"github.com/ngochidung2111/DACN-BE/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID          string           `json:"id"`
	Email       string           `json:"email"`
	FullName    string           `json:"full_name"`
	Position    *string          `json:"position,omitempty"`
	Department  *string          `json:"department,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Role        string           `json:"role"`
}

type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name,omitempty"`
	MiddleName  *string          `json:"middle_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	Department  *string          `json:"department,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}

	if r.BasicSalary != nil && !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse maps an entity to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Email:       e.Email,
		FullName:    e.FullName(),
		Position:    e.Position,
		Department:  e.Department,
		BasicSalary: e.BasicSalary,
		Role:        string(e.Role),
	}
}
