package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
)

type roomRepository struct {
	db *database.DB
}

func NewRoomRepository(db *database.DB) room.RoomRepository {
	return &roomRepository{db: db}
}

// Create implements room.RoomRepository.
func (r *roomRepository) Create(ctx context.Context, newRoom room.Room) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rooms (id, name, capacity, equipment)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newRoom.ID, newRoom.Name, newRoom.Capacity, newRoom.Equipment).
		Scan(&newRoom.CreatedAt, &newRoom.UpdatedAt)
	if err != nil {
		return room.Room{}, fmt.Errorf("failed to create room: %w", err)
	}

	return newRoom, nil
}

// GetByID implements room.RoomRepository.
func (r *roomRepository) GetByID(ctx context.Context, id string) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, capacity, equipment, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var rm room.Room
	err := q.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Name, &rm.Capacity, &rm.Equipment, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to get room by id: %w", err)
	}

	return rm, nil
}

// List implements room.RoomRepository.
func (r *roomRepository) List(ctx context.Context) ([]room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, capacity, equipment, created_at, updated_at
		FROM rooms
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []room.Room
	for rows.Next() {
		var rm room.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.Equipment, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}

	return rooms, nil
}

// Update implements room.RoomRepository.
func (r *roomRepository) Update(ctx context.Context, rm room.Room) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rooms
		SET name = $2, capacity = $3, equipment = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, rm.ID, rm.Name, rm.Capacity, rm.Equipment).Scan(&rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to update room: %w", err)
	}

	return rm, nil
}

// Delete implements room.RoomRepository.
func (r *roomRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return room.ErrRoomNotFound
	}

	return nil
}
