package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetOpenByEmployee retrieves the most recent open record (by time-in
	// descending), returning ErrNotCheckedIn if none is open
	GetOpenByEmployee(ctx context.Context, employeeID string) (Attendance, error)

	// Update persists the time-out on an existing record
	Update(ctx context.Context, a Attendance) (Attendance, error)

	// ListByEmployee retrieves all records for the employee newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListCompletedInPeriod retrieves records with a time-out whose time-in
	// falls inside [from, to). Payroll generation reads a month through this.
	ListCompletedInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
