package calendar

import (
	"context"
	"encoding/json"
	"net/http"

	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	service CalendarService
	log     *logger.Logger
}

func NewHandler(service CalendarService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

type activateRequest struct {
	PropertyID string `json:"property_id"`
}

type selectRequest struct {
	Date string `json:"date"`
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Activate", "error", writeErr)
		}
		return
	}

	grid, err := h.service.Activate(r.Context(), req.PropertyID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Activate", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, grid); err != nil {
		h.log.Error("failed to write success response", "handler", "Activate", "error", err)
	}
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Select", "error", writeErr)
		}
		return
	}

	selection, err := h.service.SelectDay(r.Context(), req.Date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Select", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, selection); err != nil {
		h.log.Error("failed to write success response", "handler", "Select", "error", err)
	}
}

func (h *Handler) Commit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var client model.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Commit", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Commit(r.Context(), client)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Commit", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Commit", "error", err)
	}
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Reset()); err != nil {
		h.log.Error("failed to write success response", "handler", "Reset", "error", err)
	}
}

func (h *Handler) Selection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Selection()); err != nil {
		h.log.Error("failed to write success response", "handler", "Selection", "error", err)
	}
}

func (h *Handler) Grid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	grid, err := h.service.Grid(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Grid", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, grid); err != nil {
		h.log.Error("failed to write success response", "handler", "Grid", "error", err)
	}
}

func (h *Handler) PrevMonth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeShift(w, r, h.service.PrevMonth, "PrevMonth")
}

func (h *Handler) NextMonth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeShift(w, r, h.service.NextMonth, "NextMonth")
}

func (h *Handler) writeShift(w http.ResponseWriter, r *http.Request, shift func(ctx context.Context) (*GridView, error), name string) {
	grid, err := shift(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, grid); err != nil {
		h.log.Error("failed to write success response", "handler", name, "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/calendar/activate", h.Activate)
	router.POST("/api/v1/calendar/select", h.Select)
	router.POST("/api/v1/calendar/commit", h.Commit)
	router.POST("/api/v1/calendar/reset", h.Reset)
	router.GET("/api/v1/calendar/selection", h.Selection)
	router.GET("/api/v1/calendar/grid", h.Grid)
	router.POST("/api/v1/calendar/prev-month", h.PrevMonth)
	router.POST("/api/v1/calendar/next-month", h.NextMonth)
}
