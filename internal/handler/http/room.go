package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/room"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/response"
)

type RoomHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type roomHandlerImpl struct {
	roomService room.RoomService
}

func NewRoomHandler(roomService room.RoomService) RoomHandler {
	return &roomHandlerImpl{
		roomService: roomService,
	}
}

// Create implements RoomHandler.
func (h *roomHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req room.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.roomService.CreateRoom(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Room created successfully", result)
}

// Get implements RoomHandler.
func (h *roomHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.roomService.GetRoom(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RoomHandler.
func (h *roomHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.roomService.ListRooms(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements RoomHandler.
func (h *roomHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req room.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.roomService.UpdateRoom(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Room updated successfully", result)
}

// Delete implements RoomHandler.
func (h *roomHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.roomService.DeleteRoom(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Room deleted successfully", nil)
}
