package payroll

import "context"

type PayrollRepository interface {
	// GetByEmployeePeriod retrieves the record for (employee, year, month),
	// returning ErrPayrollNotFound if absent
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (Payroll, error)

	// Upsert inserts the record or overwrites the computed fields of the
	// existing (employee, year, month) row
	Upsert(ctx context.Context, p Payroll) (Payroll, error)
}
