package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/payroll"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, basic_salary_snapshot,
			   worked_hours, overtime_hours, allowance, deduction, tax_amount,
			   gross_salary, net_salary, status, finalized_at, paid_at,
			   created_at, updated_at
		FROM payrolls
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&p.ID, &p.EmployeeID, &p.Year, &p.Month, &p.BasicSalarySnapshot,
		&p.WorkedHours, &p.OvertimeHours, &p.Allowance, &p.Deduction, &p.TaxAmount,
		&p.GrossSalary, &p.NetSalary, &p.Status, &p.FinalizedAt, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

// Upsert implements payroll.PayrollRepository. The unique index on
// (employee_id, year, month) makes regeneration overwrite in place.
func (r *payrollRepository) Upsert(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, year, month, basic_salary_snapshot,
			worked_hours, overtime_hours, allowance, deduction, tax_amount,
			gross_salary, net_salary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			basic_salary_snapshot = EXCLUDED.basic_salary_snapshot,
			worked_hours = EXCLUDED.worked_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			allowance = EXCLUDED.allowance,
			deduction = EXCLUDED.deduction,
			tax_amount = EXCLUDED.tax_amount,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Year, p.Month, p.BasicSalarySnapshot,
		p.WorkedHours, p.OvertimeHours, p.Allowance, p.Deduction, p.TaxAmount,
		p.GrossSalary, p.NetSalary, p.Status,
	).Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return p, nil
}
