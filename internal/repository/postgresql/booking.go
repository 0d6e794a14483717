package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/booking"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
)

type bookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `
	b.id, b.room_id, b.employee_id, b.start_time, b.end_time, b.purpose,
	b.status, b.recurring_pattern, b.recurring_end_date, b.created_at, b.updated_at,
	r.name AS room_name,
	TRIM(CONCAT_WS(' ', e.first_name, e.middle_name, e.last_name)) AS employee_name
`

const bookingJoins = `
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN employees e ON e.id = b.employee_id
`

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.RoomID, &b.EmployeeID, &b.StartTime, &b.EndTime, &b.Purpose,
		&b.Status, &b.RecurringPattern, &b.RecurringEndDate, &b.CreatedAt, &b.UpdatedAt,
		&b.RoomName, &b.EmployeeName,
	)
	return b, err
}

// Create implements booking.BookingRepository.
func (r *bookingRepository) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bookings (
			id, room_id, employee_id, start_time, end_time, purpose,
			status, recurring_pattern, recurring_end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.RoomID, b.EmployeeID, b.StartTime, b.EndTime, b.Purpose,
		b.Status, b.RecurringPattern, b.RecurringEndDate,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return b, nil
}

// CreateBatch implements booking.BookingRepository.
func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []booking.Booking) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bookings (
			id, room_id, employee_id, start_time, end_time, purpose,
			status, recurring_pattern, recurring_end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	for i := range bookings {
		b := &bookings[i]
		err := q.QueryRow(ctx, query,
			b.ID, b.RoomID, b.EmployeeID, b.StartTime, b.EndTime, b.Purpose,
			b.Status, b.RecurringPattern, b.RecurringEndDate,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create booking occurrence: %w", err)
		}
	}

	return bookings, nil
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepository) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`

	b, err := scanBooking(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return b, nil
}

// Update implements booking.BookingRepository.
func (r *bookingRepository) Update(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bookings
		SET start_time = $2, end_time = $3, purpose = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, b.ID, b.StartTime, b.EndTime, b.Purpose, b.Status).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}

	return b, nil
}

// Delete implements booking.BookingRepository.
func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

// List implements booking.BookingRepository.
func (r *bookingRepository) List(ctx context.Context, filter booking.Filter) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.RoomID != nil {
		query += fmt.Sprintf(" AND b.room_id = $%d", argPos)
		args = append(args, *filter.RoomID)
		argPos++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND b.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query += " ORDER BY b.start_time ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListByEmployee implements booking.BookingRepository.
func (r *bookingRepository) ListByEmployee(ctx context.Context, employeeID string) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.employee_id = $1
		ORDER BY b.start_time DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by employee: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListUpcoming implements booking.BookingRepository.
func (r *bookingRepository) ListUpcoming(ctx context.Context, employeeID string, from, to time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.employee_id = $1
		  AND b.start_time >= $2
		  AND b.start_time <= $3
		  AND b.status != $4
		ORDER BY b.start_time ASC`

	rows, err := q.Query(ctx, query, employeeID, from, to, booking.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// HasOverlap implements booking.BookingRepository using the standard
// half-open interval test: existing.start < new_end AND existing.end > new_start.
func (r *bookingRepository) HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeBookingID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE room_id = $1
			  AND status != $2
			  AND start_time < $3
			  AND end_time > $4
			  AND ($5::uuid IS NULL OR id != $5)
		)
	`

	var overlap bool
	err := q.QueryRow(ctx, query, roomID, booking.StatusCancelled, end, start, excludeBookingID).Scan(&overlap)
	if err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return overlap, nil
}

func collectBookings(rows pgx.Rows) ([]booking.Booking, error) {
	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}
