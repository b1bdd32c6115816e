package stats

import (
	"net/http"

	httputil "staybook/pkg/http"
	"staybook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	service StatsService
	log     *logger.Logger
}

func NewHandler(service StatsService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) Global(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.service.Global(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Global", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Global", "error", err)
	}
}

func (h *Handler) ForProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stats, err := h.service.ForProperty(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ForProperty", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "ForProperty", "error", err)
	}
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.Today(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Today", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "Today", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/stats", h.Global)
	router.GET("/api/v1/stats/today", h.Today)
	router.GET("/api/v1/stats/properties/:id", h.ForProperty)
}
