package room

import (
	"github.com/ngochidung2111/DACN-BE/internal/pkg/validator"
)

type CreateRoomRequest struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment,omitempty"`
}

func (r *CreateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Capacity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoomRequest struct {
	Name      *string   `json:"name,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Equipment *[]string `json:"equipment,omitempty"`
}

func (r *UpdateRoomRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Capacity != nil && *r.Capacity < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity",
			Message: "capacity must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
}

func ToResponse(r Room) RoomResponse {
	equipment := r.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: equipment,
	}
}
