package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/booking"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/middleware"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/response"
)

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	CheckAvailability(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type bookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &bookingHandlerImpl{
		bookingService: bookingService,
	}
}

// Create implements BookingHandler. A request without a recurring pattern
// returns the single booking; a recurring request returns every occurrence.
func (h *bookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create booking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.bookingService.CreateBooking(r.Context(), middleware.EmployeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.RecurringPattern == nil {
		response.Created(w, "Booking created successfully", results[0])
		return
	}
	response.Created(w, "Recurring booking series created successfully", results)
}

// Get implements BookingHandler.
func (h *bookingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.bookingService.GetBooking(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements BookingHandler.
func (h *bookingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := booking.Filter{}

	if roomID := r.URL.Query().Get("room_id"); roomID != "" {
		filter.RoomID = &roomID
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := booking.Status(status)
		filter.Status = &s
	}

	results, err := h.bookingService.ListBookings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// History implements BookingHandler.
func (h *bookingHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	results, err := h.bookingService.GetEmployeeBookingHistory(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Upcoming implements BookingHandler.
func (h *bookingHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	daysAhead := 7
	if d := r.URL.Query().Get("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			daysAhead = n
		}
	}

	results, err := h.bookingService.GetUpcomingBookings(r.Context(), middleware.EmployeeID(r), daysAhead)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CheckAvailability implements BookingHandler.
func (h *bookingHandlerImpl) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start_time"))
	if err != nil {
		response.BadRequest(w, "start_time must be a valid RFC3339 timestamp", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end_time"))
	if err != nil {
		response.BadRequest(w, "end_time must be a valid RFC3339 timestamp", nil)
		return
	}

	available, err := h.bookingService.CheckRoomAvailability(r.Context(), roomID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"available": available})
}

// Update implements BookingHandler.
func (h *bookingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req booking.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.bookingService.UpdateBooking(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking updated successfully", result)
}

// Delete implements BookingHandler.
func (h *bookingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bookingService.DeleteBooking(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking deleted successfully", nil)
}
