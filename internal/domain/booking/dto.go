package booking

import (
	"time"

	"github.com/ngochidung2111/DACN-BE/internal/pkg/validator"
)

type CreateBookingRequest struct {
	RoomID           string     `json:"room_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Purpose          string     `json:"purpose"`
	RecurringPattern *string    `json:"recurring_pattern,omitempty"`
	RecurringEndDate *time.Time `json:"recurring_end_date,omitempty"`
}

func (r *CreateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RoomID) {
		errs = append(errs, validator.ValidationError{
			Field:   "room_id",
			Message: "room_id is required",
		})
	}

	if r.StartTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}

	if r.EndTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}

	if validator.IsEmpty(r.Purpose) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose is required",
		})
	}

	if r.RecurringPattern != nil && !validator.IsInSlice(*r.RecurringPattern, Patterns) {
		errs = append(errs, validator.ValidationError{
			Field:   "recurring_pattern",
			Message: "recurring_pattern must be one of DAILY, WEEKLY, MONTHLY",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBookingRequest struct {
	Status    *string    `json:"status,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Purpose   *string    `json:"purpose,omitempty"`
}

// Retimes reports whether the patch touches the booking window.
func (r *UpdateBookingRequest) Retimes() bool {
	return r.StartTime != nil || r.EndTime != nil
}

func (r *UpdateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of CONFIRMED, CANCELLED, CHECKED_IN, CHECKED_OUT",
		})
	}

	if r.Purpose != nil && validator.IsEmpty(*r.Purpose) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BookingResponse struct {
	ID               string     `json:"id"`
	RoomID           string     `json:"room_id"`
	RoomName         *string    `json:"room_name,omitempty"`
	EmployeeID       string     `json:"employee_id"`
	EmployeeName     *string    `json:"employee_name,omitempty"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Purpose          string     `json:"purpose"`
	Status           string     `json:"status"`
	RecurringPattern *string    `json:"recurring_pattern,omitempty"`
	RecurringEndDate *time.Time `json:"recurring_end_date,omitempty"`
}

func ToResponse(b Booking) BookingResponse {
	var pattern *string
	if b.RecurringPattern != nil {
		p := string(*b.RecurringPattern)
		pattern = &p
	}
	return BookingResponse{
		ID:               b.ID,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		EmployeeID:       b.EmployeeID,
		EmployeeName:     b.EmployeeName,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		Purpose:          b.Purpose,
		Status:           string(b.Status),
		RecurringPattern: pattern,
		RecurringEndDate: b.RecurringEndDate,
	}
}

func ToResponses(bookings []Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, ToResponse(b))
	}
	return responses
}
