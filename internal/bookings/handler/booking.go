package handler

import (
	"encoding/json"
	"net/http"

	"staybook/internal/bookings/service"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type bookedDatesResponse struct {
	PropertyID  string   `json:"property_id"`
	BookedDates []string `json:"booked_dates"`
}

func (h *BookingHandler) BookedDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("id")

	dates, err := h.service.BookedDates(r.Context(), propertyID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "BookedDates", "error", writeErr)
		}
		return
	}
	if dates == nil {
		dates = []string{}
	}

	if err := httputil.WriteSuccess(w, bookedDatesResponse{
		PropertyID:  propertyID,
		BookedDates: dates,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "BookedDates", "error", err)
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("id")

	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Commit(r.Context(), propertyID, &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("id")
	bookingID := ps.ByName("bookingId")

	if err := h.service.Remove(r.Context(), propertyID, bookingID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/properties/:id/booked-dates", h.BookedDates)
	router.POST("/api/v1/properties/:id/bookings", h.Create)
	router.DELETE("/api/v1/properties/:id/bookings/:bookingId", h.Delete)
}
