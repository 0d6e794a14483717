package room

import "errors"

// Room domain errors
var (
	ErrRoomNotFound = errors.New("room not found")
)
