package cellerhut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
)

const (
	defaultOrderLimit = 15
	undefinedParam    = "undefined"

	ordersFailed      = "Failed to fetch orders from Celler Hut API"
	createOrderFailed = "Failed to create order in Celler Hut API"
	verifyFailed      = "Failed to verify checkout"
)

// OrderAdapter implements adapter.OrderAdapter and adapter.TrackingAdapter.
type OrderAdapter struct {
	client *upstream.Client
}

var (
	_ adapter.OrderAdapter    = (*OrderAdapter)(nil)
	_ adapter.TrackingAdapter = (*OrderAdapter)(nil)
)

// NewOrderAdapter creates an order adapter.
func NewOrderAdapter(client *upstream.Client) *OrderAdapter {
	return &OrderAdapter{client: client}
}

// createdOrder is the create response when a payment was started with the
// order.
type createdOrder struct {
	Order   json.RawMessage `json:"order"`
	Payment json.RawMessage `json:"payment"`
}

// Create places an order. The upstream answers with the order itself or
// with {order, payment}; a payment block is attached to the result.
func (a *OrderAdapter) Create(ctx context.Context, in storefront.OrderInput) (storefront.Order, error) {
	var raw json.RawMessage
	if err := a.client.Post(ctx, ordersPath, transform.OrderInput(in), &raw); err != nil {
		return storefront.Order{}, mapError(err, nil, createOrderFailed)
	}

	orderJSON := raw
	var payment json.RawMessage
	var wrapped createdOrder
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(bytes.TrimSpace(wrapped.Order)) > 0 && !isNull(wrapped.Order) {
		orderJSON, payment = wrapped.Order, wrapped.Payment
	}

	var o celler.Order
	if err := json.Unmarshal(orderJSON, &o); err != nil {
		return storefront.Order{}, mapError(fmt.Errorf("decode created order: %w", err), nil, createOrderFailed)
	}
	return transform.OrderWithPayment(o, payment), nil
}

// List returns a page of orders. Filters equal to the literal "undefined"
// are dropped.
func (a *OrderAdapter) List(ctx context.Context, p adapter.OrderListParams) (storefront.Page[storefront.Order], error) {
	q := pageQuery(p.Page, p.Limit, defaultOrderLimit)
	setDefined(q, "customer_id", p.CustomerID)
	setDefined(q, "tracking_number", p.TrackingNumber)
	setDefined(q, "shop_id", p.ShopID)
	setDefined(q, "search", p.Search)

	list, err := fetchList[celler.Order](ctx, a.client, ordersPath, q)
	if err != nil {
		return storefront.Page[storefront.Order]{}, mapError(err, nil, ordersFailed)
	}
	return transform.Page(list, transform.RouteOrders, transform.Order), nil
}

// Get reads an order by id, then by tracking number when no order has that
// id.
func (a *OrderAdapter) Get(ctx context.Context, idOrTracking string) (storefront.Order, error) {
	notFound := messages{
		http.StatusNotFound: fmt.Sprintf("Order with ID/tracking %q not found", idOrTracking),
	}

	var o celler.Order
	err := a.client.Get(ctx, ordersPath+"/"+url.PathEscape(idOrTracking), nil, &o)
	if upstream.StatusCode(err) == http.StatusNotFound {
		o = celler.Order{}
		err = a.client.Get(ctx, trackingPath(idOrTracking), nil, &o)
	}
	if err != nil {
		return storefront.Order{}, mapError(err, notFound, ordersFailed)
	}
	return transform.Order(o), nil
}

// Update replaces an order.
func (a *OrderAdapter) Update(ctx context.Context, id int64, in storefront.OrderInput) (storefront.Order, error) {
	var o celler.Order
	if err := a.client.Put(ctx, idPath(ordersPath, id), transform.OrderInput(in), &o); err != nil {
		return storefront.Order{}, mapError(err, nil, fmt.Sprintf("Failed to update order %d in Celler Hut API", id))
	}
	return transform.Order(o), nil
}

// Cancel cancels an order.
func (a *OrderAdapter) Cancel(ctx context.Context, id int64) (storefront.Order, error) {
	var o celler.Order
	if err := a.client.Post(ctx, idPath(ordersPath, id, "cancel"), nil, &o); err != nil {
		return storefront.Order{}, mapError(err, nil, fmt.Sprintf("Failed to cancel order %d in Celler Hut API", id))
	}
	return transform.Order(o), nil
}

// VerifyCheckout prices a cart before the order is placed.
func (a *OrderAdapter) VerifyCheckout(ctx context.Context, in storefront.OrderInput) (storefront.VerifiedCheckout, error) {
	var v celler.CheckoutVerification
	if err := a.client.Post(ctx, ordersPath+"/verify-checkout", transform.OrderInput(in), &v); err != nil {
		return storefront.VerifiedCheckout{}, mapError(err, nil, verifyFailed)
	}
	return transform.CheckoutVerification(v), nil
}

// Track returns the delivery tracking view of an order.
func (a *OrderAdapter) Track(ctx context.Context, trackingNumber string) (storefront.TrackingView, error) {
	var o celler.Order
	if err := a.client.Get(ctx, trackingPath(trackingNumber), nil, &o); err != nil {
		return storefront.TrackingView{}, mapError(err, messages{
			http.StatusNotFound: fmt.Sprintf("No order found for tracking number %q", trackingNumber),
		}, "Failed to get tracking info")
	}
	return transform.Tracking(o), nil
}

func trackingPath(trackingNumber string) string {
	return ordersPath + "/tracking/" + url.PathEscape(trackingNumber)
}

func setDefined(q url.Values, key, val string) {
	if val != "" && val != undefinedParam {
		q.Set(key, val)
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
