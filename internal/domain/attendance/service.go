package attendance

import "context"

// AttendanceService defines business logic for attendance tracking
type AttendanceService interface {
	// CheckIn opens a new attendance record; fails if one is already open
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes the most recent open record; fails if none is open
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// GetAttendanceByEmployee retrieves all records newest first, annotated
	// with late/early flags against the 08:00 and 17:00 UTC+7 cutoffs
	GetAttendanceByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// GetDailyWorkingHours buckets completed records per UTC+7 calendar day,
	// newest day first
	GetDailyWorkingHours(ctx context.Context, employeeID string) ([]DailyWorkingHours, error)
}
