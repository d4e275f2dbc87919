package http

import (
	"log/slog"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
)

// AddressHandler handles HTTP requests for the caller's saved addresses.
type AddressHandler struct {
	service *service.AddressService
	logger  *slog.Logger
}

// NewAddressHandler creates a new address HTTP handler.
func NewAddressHandler(svc *service.AddressService, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /address
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if addresses == nil {
		addresses = []storefront.Address{}
	}
	httputil.WriteJSON(w, http.StatusOK, addresses)
}

// Get handles GET /address/{id}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

// Create handles POST /address
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in storefront.AddressInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	a, err := h.service.Create(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

// Update handles PUT /address/{id}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var in storefront.AddressInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	a, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /address/{id}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
