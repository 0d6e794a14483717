package booking

import (
	"context"
	"time"
)

// BookingService defines business logic for room bookings
type BookingService interface {
	// CreateBooking validates the request and creates either a single
	// booking or a whole recurring series; the returned slice holds one
	// element for a single booking and every occurrence for a series
	CreateBooking(ctx context.Context, employeeID string, req CreateBookingRequest) ([]BookingResponse, error)

	// CheckRoomAvailability reports whether the room is free over [start, end)
	CheckRoomAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error)

	// GetBooking retrieves a booking by ID
	GetBooking(ctx context.Context, id string) (BookingResponse, error)

	// ListBookings retrieves bookings matching the filter
	ListBookings(ctx context.Context, filter Filter) ([]BookingResponse, error)

	// GetEmployeeBookingHistory retrieves an employee's bookings newest first
	GetEmployeeBookingHistory(ctx context.Context, employeeID string) ([]BookingResponse, error)

	// GetUpcomingBookings retrieves non-cancelled bookings starting within daysAhead days
	GetUpcomingBookings(ctx context.Context, employeeID string, daysAhead int) ([]BookingResponse, error)

	// UpdateBooking applies a status transition; timing on recurring
	// occurrences is immutable
	UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (BookingResponse, error)

	// DeleteBooking hard-deletes a booking
	DeleteBooking(ctx context.Context, id string) error
}
