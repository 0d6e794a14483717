package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("employee already checked in and not checked out")
	ErrNotCheckedIn     = errors.New("employee has not checked in yet")
)
