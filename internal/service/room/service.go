package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
)

type RoomServiceImpl struct {
	roomRepo room.RoomRepository
}

func NewRoomService(roomRepo room.RoomRepository) room.RoomService {
	return &RoomServiceImpl{roomRepo: roomRepo}
}

// CreateRoom implements room.RoomService.
func (s *RoomServiceImpl) CreateRoom(ctx context.Context, req room.CreateRoomRequest) (room.RoomResponse, error) {
	if err := req.Validate(); err != nil {
		return room.RoomResponse{}, err
	}

	equipment := req.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	created, err := s.roomRepo.Create(ctx, room.Room{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Capacity:  req.Capacity,
		Equipment: equipment,
	})
	if err != nil {
		return room.RoomResponse{}, fmt.Errorf("failed to create room: %w", err)
	}

	return room.ToResponse(created), nil
}

// GetRoom implements room.RoomService.
func (s *RoomServiceImpl) GetRoom(ctx context.Context, id string) (room.RoomResponse, error) {
	r, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}
	return room.ToResponse(r), nil
}

// ListRooms implements room.RoomService.
func (s *RoomServiceImpl) ListRooms(ctx context.Context) ([]room.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	responses := make([]room.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, room.ToResponse(r))
	}
	return responses, nil
}

// UpdateRoom implements room.RoomService.
func (s *RoomServiceImpl) UpdateRoom(ctx context.Context, id string, req room.UpdateRoomRequest) (room.RoomResponse, error) {
	if err := req.Validate(); err != nil {
		return room.RoomResponse{}, err
	}

	r, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Capacity != nil {
		r.Capacity = *req.Capacity
	}
	if req.Equipment != nil {
		r.Equipment = *req.Equipment
	}

	updated, err := s.roomRepo.Update(ctx, r)
	if err != nil {
		return room.RoomResponse{}, fmt.Errorf("failed to update room: %w", err)
	}

	return room.ToResponse(updated), nil
}

// DeleteRoom implements room.RoomService.
func (s *RoomServiceImpl) DeleteRoom(ctx context.Context, id string) error {
	if _, err := s.roomRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
