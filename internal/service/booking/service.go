package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ngochidung2111/DACN-BE/internal/domain/booking"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/clock"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
)

type BookingServiceImpl struct {
	tx           database.TxManager
	bookingRepo  booking.BookingRepository
	roomRepo     room.RoomRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewBookingService(
	tx database.TxManager,
	bookingRepo booking.BookingRepository,
	roomRepo room.RoomRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) booking.BookingService {
	return &BookingServiceImpl{
		tx:           tx,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// CheckRoomAvailability implements booking.BookingService. The overlap test
// uses half-open [start, end) semantics, so back-to-back bookings that meet
// at the same instant do not conflict.
func (s *BookingServiceImpl) CheckRoomAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	return s.isAvailable(ctx, roomID, start, end, nil)
}

func (s *BookingServiceImpl) isAvailable(ctx context.Context, roomID string, start, end time.Time, excludeBookingID *string) (bool, error) {
	overlap, err := s.bookingRepo.HasOverlap(ctx, roomID, start, end, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}
	return !overlap, nil
}

// CreateBooking implements booking.BookingService.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, employeeID string, req booking.CreateBookingRequest) ([]booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.StartTime.Before(req.EndTime) {
		return nil, booking.ErrInvalidTimeRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rm, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	if req.RecurringPattern == nil {
		created, err := s.createSingleBooking(ctx, emp, rm, req.StartTime, req.EndTime, req.Purpose)
		if err != nil {
			return nil, err
		}
		return []booking.BookingResponse{booking.ToResponse(created)}, nil
	}

	if req.RecurringEndDate == nil {
		return nil, booking.ErrRecurringEndDateRequired
	}
	if !req.RecurringEndDate.After(req.StartTime) {
		return nil, booking.ErrInvalidRecurringEndDate
	}

	pattern := booking.Pattern(*req.RecurringPattern)
	series, err := s.createRecurringBooking(ctx, emp, rm, req.StartTime, req.EndTime, req.Purpose, pattern, *req.RecurringEndDate)
	if err != nil {
		return nil, err
	}
	return booking.ToResponses(series), nil
}

func (s *BookingServiceImpl) createSingleBooking(ctx context.Context, emp employee.Employee, rm room.Room, start, end time.Time, purpose string) (booking.Booking, error) {
	available, err := s.isAvailable(ctx, rm.ID, start, end, nil)
	if err != nil {
		return booking.Booking{}, err
	}
	if !available {
		return booking.Booking{}, &booking.SlotConflictError{RoomID: rm.ID, StartTime: start, EndTime: end}
	}

	created, err := s.bookingRepo.Create(ctx, s.newBooking(emp, rm, start, end, purpose, nil, nil))
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

// createRecurringBooking expands the series and persists it as one unit.
// Every occurrence is availability-checked before any insert happens, and
// checks plus inserts share a transaction, so a blocked occurrence leaves
// no partial series behind.
func (s *BookingServiceImpl) createRecurringBooking(
	ctx context.Context,
	emp employee.Employee,
	rm room.Room,
	start, end time.Time,
	purpose string,
	pattern booking.Pattern,
	seriesEnd time.Time,
) ([]booking.Booking, error) {
	duration := end.Sub(start)

	var created []booking.Booking
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var occurrences []booking.Booking

		currentStart := start
		currentEnd := end
		for currentStart.Before(seriesEnd) {
			available, err := s.isAvailable(ctx, rm.ID, currentStart, currentEnd, nil)
			if err != nil {
				return err
			}
			if !available {
				return &booking.SlotConflictError{RoomID: rm.ID, StartTime: currentStart, EndTime: currentEnd}
			}

			occurrences = append(occurrences, s.newBooking(emp, rm, currentStart, currentEnd, purpose, &pattern, &seriesEnd))

			currentStart = pattern.Step(currentStart)
			currentEnd = currentStart.Add(duration)
		}

		if len(occurrences) == 0 {
			return booking.ErrEmptySeries
		}

		var err error
		created, err = s.bookingRepo.CreateBatch(ctx, occurrences)
		if err != nil {
			return fmt.Errorf("failed to create recurring bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *BookingServiceImpl) newBooking(emp employee.Employee, rm room.Room, start, end time.Time, purpose string, pattern *booking.Pattern, seriesEnd *time.Time) booking.Booking {
	name := emp.FullName()
	return booking.Booking{
		ID:               uuid.NewString(),
		RoomID:           rm.ID,
		EmployeeID:       emp.ID,
		StartTime:        start,
		EndTime:          end,
		Purpose:          purpose,
		Status:           booking.StatusConfirmed,
		RecurringPattern: pattern,
		RecurringEndDate: seriesEnd,
		RoomName:         &rm.Name,
		EmployeeName:     &name,
	}
}

// GetBooking implements booking.BookingService.
func (s *BookingServiceImpl) GetBooking(ctx context.Context, id string) (booking.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	return booking.ToResponse(b), nil
}

// ListBookings implements booking.BookingService.
func (s *BookingServiceImpl) ListBookings(ctx context.Context, filter booking.Filter) ([]booking.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return booking.ToResponses(bookings), nil
}

// GetEmployeeBookingHistory implements booking.BookingService.
func (s *BookingServiceImpl) GetEmployeeBookingHistory(ctx context.Context, employeeID string) ([]booking.BookingResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee bookings: %w", err)
	}
	return booking.ToResponses(bookings), nil
}

// GetUpcomingBookings implements booking.BookingService.
func (s *BookingServiceImpl) GetUpcomingBookings(ctx context.Context, employeeID string, daysAhead int) ([]booking.BookingResponse, error) {
	if daysAhead <= 0 {
		daysAhead = 7
	}

	from := s.clock.Now()
	to := from.AddDate(0, 0, daysAhead)

	bookings, err := s.bookingRepo.ListUpcoming(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bookings: %w", err)
	}
	return booking.ToResponses(bookings), nil
}

// UpdateBooking implements booking.BookingService. Occurrences of a
// recurring series keep their window forever; callers wanting another time
// cancel and book again. Status transitions stay unordered on purpose:
// the booking desk corrects forgotten check-ins by checking out directly.
func (s *BookingServiceImpl) UpdateBooking(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}

	if b.IsRecurring() && req.Retimes() {
		return booking.BookingResponse{}, booking.ErrRecurringTimeImmutable
	}

	if req.Retimes() {
		newStart := b.StartTime
		newEnd := b.EndTime
		if req.StartTime != nil {
			newStart = *req.StartTime
		}
		if req.EndTime != nil {
			newEnd = *req.EndTime
		}
		if !newStart.Before(newEnd) {
			return booking.BookingResponse{}, booking.ErrInvalidTimeRange
		}

		available, err := s.isAvailable(ctx, b.RoomID, newStart, newEnd, &b.ID)
		if err != nil {
			return booking.BookingResponse{}, err
		}
		if !available {
			return booking.BookingResponse{}, &booking.SlotConflictError{RoomID: b.RoomID, StartTime: newStart, EndTime: newEnd}
		}

		b.StartTime = newStart
		b.EndTime = newEnd
	}

	if req.Purpose != nil {
		b.Purpose = *req.Purpose
	}

	if req.Status != nil {
		b.Status = booking.Status(*req.Status)
	}

	updated, err := s.bookingRepo.Update(ctx, b)
	if err != nil {
		return booking.BookingResponse{}, fmt.Errorf("failed to update booking: %w", err)
	}

	return booking.ToResponse(updated), nil
}

// DeleteBooking implements booking.BookingService.
func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, id string) error {
	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}
