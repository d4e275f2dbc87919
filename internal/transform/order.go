package transform

import (
	"encoding/json"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// Order defaults.
const (
	DefaultOrderStatus    = "order-pending"
	DefaultPaymentStatus  = "payment-pending"
	DefaultPaymentGateway = "CASH_ON_DELIVERY"
)

// Order converts an upstream order. Every delivery, driver and Tookan field
// is null unless the upstream set it, and gps_tracking is attached only for
// orders with tracking enabled and a Tookan job.
func Order(o celler.Order) storefront.Order {
	total := floatOr(o.Total, 0)

	out := storefront.Order{
		ID:                    o.ID,
		TrackingNumber:        o.TrackingNumber,
		CustomerID:            o.CustomerID,
		CustomerContact:       o.CustomerContact,
		CustomerName:          o.CustomerName,
		Amount:                floatOr(o.SubTotal, floatOr(o.Amount, 0)),
		SalesTax:              floatOr(o.SalesTax, 0),
		Total:                 total,
		PaidTotal:             floatOr(o.PaidTotal, total),
		PaymentID:             scalar(o.PaymentID),
		PaymentGateway:        stringOr(o.PaymentGateway, DefaultPaymentGateway),
		CouponID:              o.CouponID,
		ShopID:                o.ShopID,
		Discount:              floatOr(o.Discount, 0),
		DeliveryFee:           floatOr(o.DeliveryFee, 0),
		DeliveryTime:          o.DeliveryTime,
		Products:              rawOrEmptyArray(o.Products),
		BillingAddress:        OrderAddress(o.BillingAddress),
		ShippingAddress:       OrderAddress(o.ShippingAddress),
		Status:                stringOr(o.Status, DefaultOrderStatus),
		OrderStatus:           stringOr(o.OrderStatus, DefaultOrderStatus),
		PaymentStatus:         stringOr(o.PaymentStatus, DefaultPaymentStatus),
		ShippingZone:          o.ShippingZone,
		EstimatedDelivery:     o.EstimatedDelivery,
		TrackingEnabled:       boolOr(o.TrackingEnabled, false),
		DeliveryService:       nonEmpty(o.DeliveryService),
		TookanJobID:           scalar(o.TookanJobID),
		TookanJobToken:        nonEmpty(o.TookanJobToken),
		TookanStatus:          scalar(o.TookanStatus),
		TrackingURL:           nonEmpty(o.TrackingURL),
		DriverID:              scalar(o.DriverID),
		DriverName:            nonEmpty(o.DriverName),
		DriverPhone:           nonEmpty(o.DriverPhone),
		DriverEmail:           nonEmpty(o.DriverEmail),
		DriverPhoto:           nonEmpty(o.DriverPhoto),
		DriverVehicleNumber:   nonEmpty(o.DriverVehicleNumber),
		EstimatedDeliveryTime: nonEmpty(o.EstimatedDeliveryTime),
		AcknowledgedDatetime:  nonEmpty(o.AcknowledgedDatetime),
		ArrivedDatetime:       nonEmpty(o.ArrivedDatetime),
		ActualDeliveryTime:    nonEmpty(o.ActualDeliveryTime),
		DeliveryLatitude:      scalar(o.DeliveryLatitude),
		DeliveryLongitude:     scalar(o.DeliveryLongitude),
		DeliverySignatureURL:  nonEmpty(o.DeliverySignatureURL),
		DeliveryPhotoURL:      nonEmpty(o.DeliveryPhotoURL),
		DeliveryNotes:         nonEmpty(o.DeliveryNotes),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	if out.TrackingEnabled && out.TookanJobID != nil {
		out.GPSTracking = &storefront.GPSTracking{
			TrackingEnabled: true,
			TrackingURL:     o.TrackingURL,
			OrderID:         o.ID,
			OrderNumber:     o.TrackingNumber,
			OrderStatus:     o.OrderStatus,
			DeliveryService: o.DeliveryService,
		}
	}
	return out
}

// OrderWithPayment converts an order and attaches the payment block the
// upstream returned alongside it on create.
func OrderWithPayment(o celler.Order, payment json.RawMessage) storefront.Order {
	out := Order(o)
	if len(payment) > 0 && string(payment) != "null" {
		out.Payment = payment
	}
	return out
}

// OrderInput converts a storefront order write. sub_total is taken from
// amount when the storefront sent one.
func OrderInput(in storefront.OrderInput) celler.OrderInput {
	subTotal := in.SubTotal
	if in.Amount != nil && *in.Amount != 0 {
		subTotal = in.Amount
	}

	products := make([]celler.OrderProduct, 0, len(in.Products))
	for _, p := range in.Products {
		products = append(products, celler.OrderProduct{
			ProductID:         p.ProductID,
			VariationOptionID: p.VariationOptionID,
			OrderQuantity:     p.OrderQuantity,
			UnitPrice:         p.UnitPrice,
			Subtotal:          p.Subtotal,
		})
	}

	return celler.OrderInput{
		CustomerID:      in.CustomerID,
		CustomerContact: in.CustomerContact,
		CustomerName:    in.CustomerName,
		Products:        products,
		SubTotal:        subTotal,
		SalesTax:        in.SalesTax,
		Total:           in.Total,
		PaidTotal:       in.PaidTotal,
		PaymentGateway:  in.PaymentGateway,
		CouponID:        in.CouponID,
		ShopID:          in.ShopID,
		Discount:        in.Discount,
		DeliveryFee:     in.DeliveryFee,
		DeliveryTime:    in.DeliveryTime,
		OrderStatus:     in.OrderStatus,
		PaymentStatus:   in.PaymentStatus,
		UseWalletPoints: in.UseWalletPoints,
		Language:        in.Language,
		BillingAddress:  OrderAddressInput(in.BillingAddress),
		ShippingAddress: OrderAddressInput(in.ShippingAddress),
	}
}

// Tracking builds the public tracking view of an order.
func Tracking(o celler.Order) storefront.TrackingView {
	location := deliveryLocation(o.DeliveryLatitude, o.DeliveryLongitude)

	view := storefront.TrackingView{
		OrderID:         o.ID,
		OrderNumber:     o.TrackingNumber,
		OrderStatus:     o.OrderStatus,
		TrackingEnabled: boolOr(o.TrackingEnabled, false),
		TrackingURL:     o.TrackingURL,
		DeliveryService: o.DeliveryService,
		Delivery: storefront.Delivery{
			EstimatedTime: o.EstimatedDeliveryTime,
			ActualTime:    o.ActualDeliveryTime,
			Location:      location,
			ProofOfDelivery: storefront.ProofOfDelivery{
				Signature: o.DeliverySignatureURL,
				Photo:     o.DeliveryPhotoURL,
			},
		},
		Timeline: []json.RawMessage{},
	}

	if name := nonEmpty(o.DriverName); name != nil {
		view.Driver = &storefront.Driver{
			ID:            scalar(o.DriverID),
			Name:          *name,
			Phone:         o.DriverPhone,
			Photo:         o.DriverPhoto,
			VehicleNumber: o.DriverVehicleNumber,
			Location:      location,
		}
	}
	return view
}

// CheckoutVerification converts the verify-checkout result, never returning
// null lists.
func CheckoutVerification(v celler.CheckoutVerification) storefront.VerifiedCheckout {
	out := storefront.VerifiedCheckout{
		UnavailableProducts: v.UnavailableProducts,
		TotalTax:            v.TotalTax,
		ShippingCharge:      v.ShippingCharge,
		ShippingZone:        v.ShippingZone,
		EstimatedDelivery:   v.EstimatedDelivery,
		AvailableCoupons:    v.AvailableCoupons,
	}
	if out.UnavailableProducts == nil {
		out.UnavailableProducts = []json.RawMessage{}
	}
	if out.AvailableCoupons == nil {
		out.AvailableCoupons = []json.RawMessage{}
	}
	return out
}

func deliveryLocation(lat, lng *celler.Scalar) *storefront.LatLng {
	if lat == nil || lng == nil {
		return nil
	}
	la, okLat := lat.Float()
	lo, okLng := lng.Float()
	if !okLat || !okLng || (la == 0 && lo == 0) {
		return nil
	}
	return &storefront.LatLng{Lat: la, Lng: lo}
}

func scalar(s *celler.Scalar) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := s.String()
	return &v
}
