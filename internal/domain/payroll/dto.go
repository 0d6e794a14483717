package payroll

import (
	"github.com/shopspring/decimal"
)

type PayrollResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	BasicSalarySnapshot decimal.Decimal `json:"basic_salary_snapshot"`
	WorkedHours         decimal.Decimal `json:"worked_hours"`
	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
	Allowance           decimal.Decimal `json:"allowance"`
	Deduction           decimal.Decimal `json:"deduction"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	GrossSalary         decimal.Decimal `json:"gross_salary"`
	NetSalary           decimal.Decimal `json:"net_salary"`
	Status              string          `json:"status"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                  p.ID,
		EmployeeID:          p.EmployeeID,
		Year:                p.Year,
		Month:               p.Month,
		BasicSalarySnapshot: p.BasicSalarySnapshot,
		WorkedHours:         p.WorkedHours,
		OvertimeHours:       p.OvertimeHours,
		Allowance:           p.Allowance,
		Deduction:           p.Deduction,
		TaxAmount:           p.TaxAmount,
		GrossSalary:         p.GrossSalary,
		NetSalary:           p.NetSalary,
		Status:              string(p.Status),
	}
}
