package room

import "time"

type Room struct {
	ID        string
	Name      string
	Capacity  int
	Equipment []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
