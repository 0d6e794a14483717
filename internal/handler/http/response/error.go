package response

import (
	"errors"
	"net/http"

	"github.com/ngochidung2111/DACN-BE/internal/domain/attendance"
	"github.com/ngochidung2111/DACN-BE/internal/domain/auth"
	"github.com/ngochidung2111/DACN-BE/internal/domain/booking"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/ngochidung2111/DACN-BE/internal/domain/payroll"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Slot conflicts carry the blocked time window in the message
	var conflictErr *booking.SlotConflictError
	if errors.As(err, &conflictErr) {
		Conflict(w, conflictErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Room domain errors
	case errors.Is(err, room.ErrRoomNotFound):
		NotFound(w, "Room not found")

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrInvalidTimeRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, booking.ErrRecurringEndDateRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, booking.ErrInvalidRecurringEndDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, booking.ErrEmptySeries):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, booking.ErrRecurringTimeImmutable):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrBasicSalaryRequired):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
