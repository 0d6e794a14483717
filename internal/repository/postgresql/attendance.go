package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/attendance"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, time_in, time_out)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.TimeIn, a.TimeOut).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetOpenByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND time_out IS NULL
		ORDER BY time_in DESC
		LIMIT 1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.TimeIn, &a.TimeOut, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET time_out = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.TimeOut).Scan(&a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return a, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY time_in DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListCompletedInPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListCompletedInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, time_in, time_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND time_in >= $2
		  AND time_in < $3
		  AND time_out IS NOT NULL
		ORDER BY time_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for period: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.TimeIn, &a.TimeOut, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}
	return records, nil
}
