package service

import (
	"context"
	"log/slog"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// OrderStatus is an entry of the order status list. The upstream keeps no
// such list, so it is always empty.
type OrderStatus struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Serial int    `json:"serial"`
	Color  string `json:"color"`
}

// Download is a purchased digital file.
type Download struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// OrderService implements the order operations.
type OrderService struct {
	orders adapter.OrderAdapter
	logger *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders adapter.OrderAdapter, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger,
	}
}

// Create places an order for the caller.
func (s *OrderService) Create(ctx context.Context, in storefront.OrderInput) (storefront.Order, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.Order{}, err
	}
	return s.orders.Create(ctx, in)
}

// List returns a page of orders. It never fails.
func (s *OrderService) List(ctx context.Context, p adapter.OrderListParams) storefront.Page[storefront.Order] {
	page, err := s.orders.List(ctx, p)
	if err != nil {
		fallback(ctx, s.logger, "orders", err)
		return transform.EmptyPage[storefront.Order](transform.RouteOrders)
	}
	return page
}

// Get reads an order by id or tracking number.
func (s *OrderService) Get(ctx context.Context, idOrTracking string) (storefront.Order, error) {
	return s.orders.Get(ctx, idOrTracking)
}

// Update replaces an order.
func (s *OrderService) Update(ctx context.Context, id int64, in storefront.OrderInput) (storefront.Order, error) {
	return s.orders.Update(ctx, id, in)
}

// Cancel cancels an order.
func (s *OrderService) Cancel(ctx context.Context, id int64) (storefront.Order, error) {
	return s.orders.Cancel(ctx, id)
}

// VerifyCheckout prices the caller's cart.
func (s *OrderService) VerifyCheckout(ctx context.Context, in storefront.OrderInput) (storefront.VerifiedCheckout, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.VerifiedCheckout{}, err
	}
	return s.orders.VerifyCheckout(ctx, in)
}

// Statuses returns the order status list.
func (s *OrderService) Statuses() storefront.Page[OrderStatus] {
	return transform.EmptyPage[OrderStatus](transform.RouteStatuses)
}

// Status returns one order status. There are none.
func (s *OrderService) Status(string) *OrderStatus {
	return nil
}

// CreateStatus is not supported by the upstream.
func (s *OrderService) CreateStatus() error {
	return apperrors.NotImplemented("Creating order statuses is not yet implemented")
}

// UpdateStatus is not supported by the upstream.
func (s *OrderService) UpdateStatus() error {
	return apperrors.NotImplemented("Updating order statuses is not yet implemented")
}

// Downloads returns the caller's digital downloads.
func (s *OrderService) Downloads() storefront.Page[Download] {
	return transform.EmptyPage[Download](transform.RouteDownloads)
}

// DigitalFileURL is not supported by the upstream.
func (s *OrderService) DigitalFileURL() error {
	return apperrors.NotImplemented("Digital file downloads are not yet implemented")
}

// ExportURL is not supported by the upstream.
func (s *OrderService) ExportURL() error {
	return apperrors.NotImplemented("Order export is not yet implemented")
}

// InvoiceURL is not supported by the upstream.
func (s *OrderService) InvoiceURL() error {
	return apperrors.NotImplemented("Invoice download is not yet implemented")
}
