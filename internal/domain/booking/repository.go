package booking

import (
	"context"
	"time"
)

// Filter narrows booking listings. Nil fields are ignored.
type Filter struct {
	RoomID     *string
	EmployeeID *string
	Status     *Status
}

type BookingRepository interface {
	// Create persists a single booking
	Create(ctx context.Context, b Booking) (Booking, error)

	// CreateBatch persists a whole recurring series. Callers run it inside
	// a transaction so a failure leaves no partial series behind.
	CreateBatch(ctx context.Context, bookings []Booking) ([]Booking, error)

	// GetByID retrieves a booking by ID, returning ErrBookingNotFound if absent
	GetByID(ctx context.Context, id string) (Booking, error)

	// Update persists status changes on an existing booking
	Update(ctx context.Context, b Booking) (Booking, error)

	// Delete hard-deletes a booking
	Delete(ctx context.Context, id string) error

	// List retrieves bookings matching the filter ordered by start time ascending
	List(ctx context.Context, filter Filter) ([]Booking, error)

	// ListByEmployee retrieves an employee's bookings newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Booking, error)

	// ListUpcoming retrieves non-cancelled bookings starting within [from, to]
	ListUpcoming(ctx context.Context, employeeID string, from, to time.Time) ([]Booking, error)

	// HasOverlap reports whether any non-cancelled booking on the room
	// overlaps [start, end). excludeBookingID removes one booking from the
	// comparison set when re-checking an existing booking.
	HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeBookingID *string) (bool, error)
}
