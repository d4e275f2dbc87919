package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
)

// TrackingHandler serves public delivery tracking.
type TrackingHandler struct {
	service *service.TrackingService
	logger  *slog.Logger
}

// NewTrackingHandler creates a new tracking HTTP handler.
func NewTrackingHandler(svc *service.TrackingService, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: svc,
		logger:  logger,
	}
}

// Track handles GET /tracking/{trackingNumber} and GET
// /tracking/order/{trackingNumber}.
func (h *TrackingHandler) Track(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Track(r.Context(), chi.URLParam(r, "trackingNumber"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}
