package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ngochidung2111/DACN-BE/internal/domain/booking"
	"github.com/ngochidung2111/DACN-BE/internal/domain/employee"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeBookingRepo struct {
	bookings map[string]booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]booking.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b booking.Booking) (booking.Booking, error) {
	r.bookings[b.ID] = b
	return b, nil
}

func (r *fakeBookingRepo) CreateBatch(_ context.Context, bookings []booking.Booking) ([]booking.Booking, error) {
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return bookings, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b booking.Booking) (booking.Booking, error) {
	if _, ok := r.bookings[b.ID]; !ok {
		return booking.Booking{}, booking.ErrBookingNotFound
	}
	r.bookings[b.ID] = b
	return b, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter booking.Filter) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range r.bookings {
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if filter.EmployeeID != nil && b.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByEmployee(_ context.Context, employeeID string) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range r.bookings {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListUpcoming(_ context.Context, employeeID string, from, to time.Time) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range r.bookings {
		if b.EmployeeID != employeeID || b.Status == booking.StatusCancelled {
			continue
		}
		if b.StartTime.Before(from) || b.StartTime.After(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) HasOverlap(_ context.Context, roomID string, start, end time.Time, excludeBookingID *string) (bool, error) {
	for _, b := range r.bookings {
		if b.RoomID != roomID || b.Status == booking.StatusCancelled {
			continue
		}
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxManager snapshots the booking store and restores it when fn
// fails, mirroring transactional rollback.
type fakeTxManager struct {
	repo *fakeBookingRepo
}

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[string]booking.Booking, len(m.repo.bookings))
	for id, b := range m.repo.bookings {
		snapshot[id] = b
	}
	if err := fn(ctx); err != nil {
		m.repo.bookings = snapshot
		return err
	}
	return nil
}

type fakeRoomRepo struct {
	rooms map[string]room.Room
}

func (r *fakeRoomRepo) Create(_ context.Context, newRoom room.Room) (room.Room, error) {
	r.rooms[newRoom.ID] = newRoom
	return newRoom, nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (room.Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return room.Room{}, room.ErrRoomNotFound
	}
	return rm, nil
}

func (r *fakeRoomRepo) List(_ context.Context) ([]room.Room, error) {
	var out []room.Room
	for _, rm := range r.rooms {
		out = append(out, rm)
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, rm room.Room) (room.Room, error) {
	r.rooms[rm.ID] = rm
	return rm, nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id string) error {
	delete(r.rooms, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

type testEnv struct {
	service     booking.BookingService
	bookingRepo *fakeBookingRepo
}

func newTestEnv(now time.Time) testEnv {
	bookingRepo := newFakeBookingRepo()
	roomRepo := &fakeRoomRepo{rooms: map[string]room.Room{
		"room-1": {ID: "room-1", Name: "Boardroom", Capacity: 10},
		"room-2": {ID: "room-2", Name: "Huddle", Capacity: 4},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Email: "ana@example.com", FirstName: "Ana", LastName: "Tran", Role: employee.RoleEmployee},
	}}

	svc := NewBookingService(&fakeTxManager{repo: bookingRepo}, bookingRepo, roomRepo, employeeRepo, fixedClock{now: now})
	return testEnv{service: svc, bookingRepo: bookingRepo}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestCreateBooking_Single_Success(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Sprint planning",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "room-1", results[0].RoomID)
	assert.Equal(t, "emp-1", results[0].EmployeeID)
	assert.Equal(t, string(booking.StatusConfirmed), results[0].Status)
	require.NotNil(t, results[0].RoomName)
	assert.Equal(t, "Boardroom", *results[0].RoomName)
	require.NotNil(t, results[0].EmployeeName)
	assert.Equal(t, "Ana Tran", *results[0].EmployeeName)
	assert.Len(t, env.bookingRepo.bookings, 1)
}

func TestCreateBooking_OverlapRejected(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Sprint planning",
	})
	require.NoError(t, err)

	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 30),
		EndTime:   at(4, 10, 30),
		Purpose:   "Overlapping standup",
	})

	var conflict *booking.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "room-1", conflict.RoomID)
	assert.Equal(t, at(4, 9, 30), conflict.StartTime)
	assert.Len(t, env.bookingRepo.bookings, 1)
}

func TestCreateBooking_BackToBackDoesNotConflict(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "First slot",
	})
	require.NoError(t, err)

	// Starts exactly where the previous one ends
	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 10, 0),
		EndTime:   at(4, 11, 0),
		Purpose:   "Second slot",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, env.bookingRepo.bookings, 2)
}

func TestCreateBooking_OtherRoomDoesNotConflict(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Boardroom meeting",
	})
	require.NoError(t, err)

	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-2",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Huddle at the same time",
	})

	require.NoError(t, err)
}

func TestCreateBooking_CancelledBookingDoesNotBlock(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "To be cancelled",
	})
	require.NoError(t, err)

	cancelled := string(booking.StatusCancelled)
	_, err = env.service.UpdateBooking(ctx, results[0].ID, booking.UpdateBookingRequest{Status: &cancelled})
	require.NoError(t, err)

	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Replacement",
	})

	require.NoError(t, err)
}

func TestCreateBooking_InvalidTimeRange(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 10, 0),
		EndTime:   at(4, 9, 0),
		Purpose:   "Backwards window",
	})
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)

	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 9, 0),
		Purpose:   "Zero-length window",
	})
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
}

func TestCreateBooking_UnknownRoomAndEmployee(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-missing",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "No such room",
	})
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	_, err = env.service.CreateBooking(ctx, "emp-missing", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "No such employee",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateBooking_DailySeries(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	pattern := string(booking.PatternDaily)
	seriesEnd := at(6, 0, 0)
	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(1, 9, 0),
		EndTime:          at(1, 10, 0),
		Purpose:          "Daily standup",
		RecurringPattern: &pattern,
		RecurringEndDate: &seriesEnd,
	})

	// Occurrences on the 1st through the 5th; the 6th is excluded because
	// the series end is exclusive
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, occ := range results {
		assert.Equal(t, at(1+i, 9, 0), occ.StartTime)
		assert.Equal(t, at(1+i, 10, 0), occ.EndTime)
		require.NotNil(t, occ.RecurringPattern)
		assert.Equal(t, pattern, *occ.RecurringPattern)
		require.NotNil(t, occ.RecurringEndDate)
		assert.Equal(t, seriesEnd, *occ.RecurringEndDate)
	}
}

func TestCreateBooking_WeeklySeries(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	pattern := string(booking.PatternWeekly)
	seriesEnd := at(22, 0, 0)
	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(1, 14, 0),
		EndTime:          at(1, 15, 0),
		Purpose:          "Weekly retro",
		RecurringPattern: &pattern,
		RecurringEndDate: &seriesEnd,
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, at(1, 14, 0), results[0].StartTime)
	assert.Equal(t, at(8, 14, 0), results[1].StartTime)
	assert.Equal(t, at(15, 14, 0), results[2].StartTime)
}

func TestCreateBooking_MonthlySeriesNormalizesOverflow(t *testing.T) {
	env := newTestEnv(time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC))
	ctx := context.Background()

	pattern := string(booking.PatternMonthly)
	start := time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)
	seriesEnd := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        start,
		EndTime:          start.Add(time.Hour),
		Purpose:          "Month-end review",
		RecurringPattern: &pattern,
		RecurringEndDate: &seriesEnd,
	})

	// January 31 plus one month normalizes to March 2 because February
	// has no 31st
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, start, results[0].StartTime)
	assert.Equal(t, time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC), results[1].StartTime)
}

func TestCreateBooking_SeriesAtomicOnConflict(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	// Pre-book the slot the third occurrence would need
	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(3, 9, 30),
		EndTime:   at(3, 10, 30),
		Purpose:   "Blocks the third day",
	})
	require.NoError(t, err)

	pattern := string(booking.PatternDaily)
	seriesEnd := at(6, 0, 0)
	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(1, 9, 0),
		EndTime:          at(1, 10, 0),
		Purpose:          "Daily standup",
		RecurringPattern: &pattern,
		RecurringEndDate: &seriesEnd,
	})

	var conflict *booking.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, at(3, 9, 0), conflict.StartTime)

	// No occurrence from the failed series may persist
	assert.Len(t, env.bookingRepo.bookings, 1)
}

func TestCreateBooking_RecurringEndDateValidation(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	pattern := string(booking.PatternDaily)

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(4, 9, 0),
		EndTime:          at(4, 10, 0),
		Purpose:          "Missing end date",
		RecurringPattern: &pattern,
	})
	assert.ErrorIs(t, err, booking.ErrRecurringEndDateRequired)

	before := at(3, 0, 0)
	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(4, 9, 0),
		EndTime:          at(4, 10, 0),
		Purpose:          "End before start",
		RecurringPattern: &pattern,
		RecurringEndDate: &before,
	})
	assert.ErrorIs(t, err, booking.ErrInvalidRecurringEndDate)
}

func TestCheckRoomAvailability(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Existing booking",
	})
	require.NoError(t, err)

	available, err := env.service.CheckRoomAvailability(ctx, "room-1", at(4, 9, 30), at(4, 10, 30))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = env.service.CheckRoomAvailability(ctx, "room-1", at(4, 10, 0), at(4, 11, 0))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestUpdateBooking_RecurringRetimeRejected(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	pattern := string(booking.PatternDaily)
	seriesEnd := at(3, 0, 0)
	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:           "room-1",
		StartTime:        at(1, 9, 0),
		EndTime:          at(1, 10, 0),
		Purpose:          "Daily standup",
		RecurringPattern: &pattern,
		RecurringEndDate: &seriesEnd,
	})
	require.NoError(t, err)

	newStart := at(1, 11, 0)
	_, err = env.service.UpdateBooking(ctx, results[0].ID, booking.UpdateBookingRequest{StartTime: &newStart})
	assert.ErrorIs(t, err, booking.ErrRecurringTimeImmutable)

	// Status transitions on occurrences stay allowed
	checkedIn := string(booking.StatusCheckedIn)
	updated, err := env.service.UpdateBooking(ctx, results[0].ID, booking.UpdateBookingRequest{Status: &checkedIn})
	require.NoError(t, err)
	assert.Equal(t, checkedIn, updated.Status)
}

func TestUpdateBooking_RetimeExcludesSelf(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Movable booking",
	})
	require.NoError(t, err)

	// Shifting within its own original window must not self-conflict
	newStart := at(4, 9, 30)
	newEnd := at(4, 10, 30)
	updated, err := env.service.UpdateBooking(ctx, results[0].ID, booking.UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, newStart, updated.StartTime)
	assert.Equal(t, newEnd, updated.EndTime)
}

func TestUpdateBooking_RetimeConflictsWithOther(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 11, 0),
		EndTime:   at(4, 12, 0),
		Purpose:   "Immovable booking",
	})
	require.NoError(t, err)

	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Movable booking",
	})
	require.NoError(t, err)

	newStart := at(4, 11, 30)
	newEnd := at(4, 12, 30)
	_, err = env.service.UpdateBooking(ctx, results[0].ID, booking.UpdateBookingRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})

	var conflict *booking.SlotConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	cancelled := string(booking.StatusCancelled)
	_, err := env.service.UpdateBooking(ctx, "missing", booking.UpdateBookingRequest{Status: &cancelled})
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestDeleteBooking(t *testing.T) {
	env := newTestEnv(at(1, 7, 0))
	ctx := context.Background()

	results, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(4, 9, 0),
		EndTime:   at(4, 10, 0),
		Purpose:   "Disposable booking",
	})
	require.NoError(t, err)

	require.NoError(t, env.service.DeleteBooking(ctx, results[0].ID))
	assert.Empty(t, env.bookingRepo.bookings)

	err = env.service.DeleteBooking(ctx, results[0].ID)
	assert.True(t, errors.Is(err, booking.ErrBookingNotFound))
}

func TestGetUpcomingBookings_DefaultWindow(t *testing.T) {
	now := at(1, 7, 0)
	env := newTestEnv(now)
	ctx := context.Background()

	// Inside the default 7-day window
	_, err := env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(5, 9, 0),
		EndTime:   at(5, 10, 0),
		Purpose:   "Soon",
	})
	require.NoError(t, err)

	// Outside the window
	_, err = env.service.CreateBooking(ctx, "emp-1", booking.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: at(20, 9, 0),
		EndTime:   at(20, 10, 0),
		Purpose:   "Far out",
	})
	require.NoError(t, err)

	results, err := env.service.GetUpcomingBookings(ctx, "emp-1", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Soon", results[0].Purpose)
}
