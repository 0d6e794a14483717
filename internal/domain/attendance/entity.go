package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	TimeIn     time.Time
	TimeOut    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen reports whether the employee is still checked in on this record.
func (a Attendance) IsOpen() bool {
	return a.TimeOut == nil
}

// WorkedMs returns the worked duration in milliseconds, clamped to zero,
// or zero while the record is still open.
func (a Attendance) WorkedMs() int64 {
	if a.TimeOut == nil {
		return 0
	}
	ms := a.TimeOut.Sub(a.TimeIn).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}
