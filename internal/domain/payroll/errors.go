package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound     = errors.New("payroll record not found")
	ErrInvalidPeriod       = errors.New("invalid payroll period")
	ErrBasicSalaryRequired = errors.New("employee basicSalary is required to calculate payroll")
)
