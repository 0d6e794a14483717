package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ngochidung2111/DACN-BE/internal/domain/attendance"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/ngochidung2111/DACN-BE/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var msPerHour = decimal.NewFromInt(60 * 60 * 1000)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// GenerateMonthlyPayroll implements payroll.PayrollService. Worked and
// overtime hours are rounded to 2 decimals before feeding the salary
// computation, and every monetary output is rounded again at its own step.
func (s *PayrollServiceImpl) GenerateMonthlyPayroll(ctx context.Context, employeeID string, year, month int) (payroll.PayrollResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if emp.BasicSalary == nil || !emp.BasicSalary.IsPositive() {
		return payroll.PayrollResponse{}, payroll.ErrBasicSalaryRequired
	}

	periodStart, periodEnd := payroll.PeriodWindow(year, month)

	records, err := s.attendanceRepo.ListCompletedInPeriod(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to load attendance for period: %w", err)
	}

	var totalWorkedMs int64
	for _, record := range records {
		totalWorkedMs += record.WorkedMs()
	}

	standardHours := decimal.NewFromInt(payroll.StandardHours)
	basicSalary := *emp.BasicSalary
	hourlyRate := basicSalary.Div(standardHours)

	workedHours := decimal.NewFromInt(totalWorkedMs).Div(msPerHour).Round(2)
	regularHours := decimal.Min(workedHours, standardHours)
	overtimeHours := decimal.Max(workedHours.Sub(standardHours), decimal.Zero).Round(2)

	grossSalary := regularHours.Mul(hourlyRate).
		Add(overtimeHours.Mul(hourlyRate).Mul(payroll.OvertimeRate)).
		Round(2)

	allowance := decimal.Zero
	deduction := decimal.Zero
	taxAmount := decimal.Zero
	netSalary := grossSalary.Add(allowance).Sub(deduction).Sub(taxAmount).Round(2)

	record := payroll.Payroll{
		ID:                  uuid.NewString(),
		EmployeeID:          emp.ID,
		Year:                year,
		Month:               month,
		BasicSalarySnapshot: basicSalary.Round(2),
		WorkedHours:         workedHours,
		OvertimeHours:       overtimeHours,
		Allowance:           allowance,
		Deduction:           deduction,
		TaxAmount:           taxAmount,
		GrossSalary:         grossSalary,
		NetSalary:           netSalary,
		Status:              payroll.StatusDraft,
	}

	// Regeneration overwrites computed fields but keeps identity and status
	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, year, month)
	switch {
	case err == nil:
		record.ID = existing.ID
		record.Status = existing.Status
		record.FinalizedAt = existing.FinalizedAt
		record.PaidAt = existing.PaidAt
		record.CreatedAt = existing.CreatedAt
	case !errors.Is(err, payroll.ErrPayrollNotFound):
		return payroll.PayrollResponse{}, fmt.Errorf("failed to look up existing payroll: %w", err)
	}

	saved, err := s.payrollRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to save payroll: %w", err)
	}

	return payroll.ToResponse(saved), nil
}

// GetMyPayrollByMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyPayrollByMonth(ctx context.Context, employeeID string, year, month int) (*payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up payroll: %w", err)
	}

	resp := payroll.ToResponse(record)
	return &resp, nil
}
