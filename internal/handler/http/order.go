package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/httputil"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/pagination"
)

const defaultOrderLimit = 15

// OrderHandler handles HTTP requests for order, order status and download
// endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in storefront.OrderInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, order)
}

// List handles GET /orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	pg := pagination.FromRequest(r, defaultOrderLimit)
	q := r.URL.Query()

	page := h.service.List(r.Context(), adapter.OrderListParams{
		Page:           pg.Page,
		Limit:          pg.Limit,
		CustomerID:     q.Get("customer_id"),
		TrackingNumber: q.Get("tracking_number"),
		ShopID:         q.Get("shop_id"),
		Search:         q.Get("search"),
	})
	httputil.WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /orders/{id} and GET /orders/tracking-number/{id}. Both
// accept an order id or a tracking number.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

// Update handles PUT /orders/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	var in storefront.OrderInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	order, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

// Cancel handles DELETE /orders/{id}
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	order, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

// VerifyCheckout handles POST /orders/checkout/verify
func (h *OrderHandler) VerifyCheckout(w http.ResponseWriter, r *http.Request) {
	var in storefront.OrderInput
	if err := httputil.DecodeAndValidate(r, &in); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	resp, err := h.service.VerifyCheckout(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// Statuses handles GET /order-status
func (h *OrderHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Statuses())
}

// Status handles GET /order-status/{param}
func (h *OrderHandler) Status(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Status(chi.URLParam(r, "param")))
}

// CreateStatus handles POST /order-status
func (h *OrderHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, r, h.service.CreateStatus(), h.logger)
}

// UpdateStatus handles PUT and DELETE /order-status/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, r, h.service.UpdateStatus(), h.logger)
}

// Downloads handles GET /downloads
func (h *OrderHandler) Downloads(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Downloads())
}

// DigitalFile handles POST /downloads/digital_file
func (h *OrderHandler) DigitalFile(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, r, h.service.DigitalFileURL(), h.logger)
}

// Export handles GET /export-order-url
func (h *OrderHandler) Export(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, r, h.service.ExportURL(), h.logger)
}

// Invoice handles POST /download-invoice-url
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	httputil.WriteError(w, r, h.service.InvoiceURL(), h.logger)
}
