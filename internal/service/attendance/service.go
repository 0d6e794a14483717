package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/ngochidung2111/DACN-BE/internal/domain/attendance"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/clock"
)

// Office-hour cutoffs in the UTC+7 reference zone
const (
	lateCutoffHour  = 8
	earlyCutoffHour = 17
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

// CheckIn implements attendance.AttendanceService. An employee holds at
// most one open record at a time.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, err = s.attendanceRepo.GetOpenByEmployee(ctx, emp.ID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrNotCheckedIn) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open attendance: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		TimeIn:     s.clock.Now(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.annotate(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	open.TimeOut = &now

	updated, err := s.attendanceRepo.Update(ctx, open)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return s.annotate(updated), nil
}

// GetAttendanceByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.annotate(record))
	}
	return responses, nil
}

// annotate flags time-in after 08:00 and time-out before 17:00 on the
// record's UTC+7 calendar day.
func (s *AttendanceServiceImpl) annotate(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		TimeIn:       a.TimeIn,
		TimeOut:      a.TimeOut,
		TimeInStatus: attendance.StatusOnTime,
	}

	if a.TimeIn.After(clock.OfficeDayAt(a.TimeIn, lateCutoffHour)) {
		resp.TimeInStatus = attendance.StatusLate
	}

	if a.TimeOut != nil {
		status := attendance.StatusOnTime
		if a.TimeOut.Before(clock.OfficeDayAt(*a.TimeOut, earlyCutoffHour)) {
			status = attendance.StatusEarly
		}
		resp.TimeOutStatus = &status
	}

	return resp
}

// GetDailyWorkingHours implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyWorkingHours(ctx context.Context, employeeID string) ([]attendance.DailyWorkingHours, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	totals := make(map[string]int64)
	for _, record := range records {
		if record.TimeOut == nil {
			continue
		}
		day := clock.OfficeDay(record.TimeIn)
		totals[day] += record.WorkedMs()
	}

	const eightHoursMs = 8 * 60 * 60 * 1000

	days := make([]attendance.DailyWorkingHours, 0, len(totals))
	for day, totalMs := range totals {
		days = append(days, attendance.DailyWorkingHours{
			Date:             day,
			WorkedHours:      round2(float64(totalMs) / (1000 * 60 * 60)),
			EnoughEightHours: totalMs >= eightHoursMs,
		})
	}

	// YYYY-MM-DD sorts lexicographically
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})

	return days, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
