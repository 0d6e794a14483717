package room

import "context"

type RoomRepository interface {
	// Create creates a new room
	Create(ctx context.Context, newRoom Room) (Room, error)

	// GetByID retrieves a room by ID, returning ErrRoomNotFound if absent
	GetByID(ctx context.Context, id string) (Room, error)

	// List retrieves all rooms ordered by name
	List(ctx context.Context) ([]Room, error)

	// Update updates an existing room
	Update(ctx context.Context, r Room) (Room, error)

	// Delete hard-deletes a room
	Delete(ctx context.Context, id string) error
}
