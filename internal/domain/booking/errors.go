package booking

import (
	"errors"
	"fmt"
	"time"
)

// Booking domain errors
var (
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInvalidTimeRange         = errors.New("start time must be before end time")
	ErrRecurringEndDateRequired = errors.New("recurring end date is required for recurring bookings")
	ErrInvalidRecurringEndDate  = errors.New("recurring end date must be after start time")
	ErrEmptySeries              = errors.New("no occurrences generated: recurring end date is too close to start time")
	ErrRecurringTimeImmutable   = errors.New("cannot change the time of a recurring booking: cancel it and create a new one")
)

// SlotConflictError reports a room double-booking, carrying the time
// window that failed so series creation can name the blocked occurrence.
type SlotConflictError struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("room is not available from %s to %s",
		e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}
