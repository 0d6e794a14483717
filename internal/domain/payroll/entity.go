package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Standard-hours/overtime model constants
const (
	StandardWorkingDays        = 26
	StandardWorkingHoursPerDay = 8
	StandardHours              = StandardWorkingDays * StandardWorkingHoursPerDay
)

// OvertimeRate is the multiplier applied to the hourly rate past StandardHours.
var OvertimeRate = decimal.NewFromFloat(1.5)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusFinalized Status = "FINALIZED"
	StatusPaid      Status = "PAID"
)

// Payroll is the computed snapshot for one employee-month. Unique per
// (employee, year, month); regeneration overwrites computed fields in place.
type Payroll struct {
	ID                  string
	EmployeeID          string
	Year                int
	Month               int
	BasicSalarySnapshot decimal.Decimal
	WorkedHours         decimal.Decimal
	OvertimeHours       decimal.Decimal
	Allowance           decimal.Decimal
	Deduction           decimal.Decimal
	TaxAmount           decimal.Decimal
	GrossSalary         decimal.Decimal
	NetSalary           decimal.Decimal
	Status              Status
	FinalizedAt         *time.Time
	PaidAt              *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PeriodWindow returns the half-open UTC month window [start, end).
func PeriodWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
