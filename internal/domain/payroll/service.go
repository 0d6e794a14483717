package payroll

import "context"

// PayrollService defines business logic for payroll generation
type PayrollService interface {
	// GenerateMonthlyPayroll derives the employee's payroll for the given
	// period from attendance and upserts the (employee, year, month) row
	GenerateMonthlyPayroll(ctx context.Context, employeeID string, year, month int) (PayrollResponse, error)

	// GetMyPayrollByMonth is a pure lookup; returns nil when no record exists
	GetMyPayrollByMonth(ctx context.Context, employeeID string, year, month int) (*PayrollResponse, error)
}
