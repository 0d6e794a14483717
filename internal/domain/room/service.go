package room

import "context"

// RoomService defines business logic for meeting rooms
type RoomService interface {
	// CreateRoom creates a new room
	CreateRoom(ctx context.Context, req CreateRoomRequest) (RoomResponse, error)

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, id string) (RoomResponse, error)

	// ListRooms retrieves all rooms ordered by name
	ListRooms(ctx context.Context) ([]RoomResponse, error)

	// UpdateRoom updates an existing room
	UpdateRoom(ctx context.Context, id string, req UpdateRoomRequest) (RoomResponse, error)

	// DeleteRoom hard-deletes a room
	DeleteRoom(ctx context.Context, id string) error
}
