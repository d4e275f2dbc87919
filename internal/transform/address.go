package transform

import (
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// Address type slugs.
const (
	AddressBilling  = "billing"
	AddressShipping = "shipping"
)

var (
	billingType  = storefront.AddressType{ID: 1, Name: "Billing", Slug: AddressBilling}
	shippingType = storefront.AddressType{ID: 2, Name: "Shipping", Slug: AddressShipping}
)

// Address converts an upstream address. The type is rebuilt from the
// billing flag alone, so an address with neither flag reads as shipping.
func Address(a celler.Address) storefront.Address {
	t := shippingType
	if boolOr(a.IsDefaultBilling, false) {
		t = billingType
	}
	return storefront.Address{
		ID:    a.ID,
		Title: a.Title,
		Address: storefront.AddressFields{
			StreetAddress: a.Street,
			State:         a.Province,
			Zip:           a.Zip(),
			City:          a.City,
			Country:       a.Country,
		},
		Type:             t,
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		FormattedAddress: a.FormattedAddress,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// AddressInput converts a storefront address write. Only a billing or
// shipping type slug sets a default flag, and exactly one of them.
func AddressInput(in storefront.AddressInput) celler.Address {
	out := celler.Address{
		Title:            in.Title,
		Street:           in.Address.StreetAddress,
		Province:         in.Address.State,
		PostalCode:       in.Address.Zip,
		City:             in.Address.City,
		Country:          in.Address.Country,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		FormattedAddress: in.FormattedAddress,
	}
	switch in.Type.Slug {
	case AddressBilling:
		out.IsDefaultBilling, out.IsDefaultShipping = ptr(true), ptr(false)
	case AddressShipping:
		out.IsDefaultBilling, out.IsDefaultShipping = ptr(false), ptr(true)
	}
	return out
}

// OrderAddress converts an address embedded in an upstream order. Either
// spelling is accepted, the upstream one first.
func OrderAddress(a *celler.OrderAddress) *storefront.UserAddress {
	if a == nil {
		return nil
	}
	return &storefront.UserAddress{
		StreetAddress: firstNonEmpty(a.Street, a.StreetAddress),
		State:         firstNonEmpty(a.Province, a.State),
		Zip:           firstNonEmpty(a.PostalCode, a.Zip),
		City:          a.City,
		Country:       a.Country,
	}
}

// OrderAddressInput converts a storefront order address for the upstream.
func OrderAddressInput(a *storefront.UserAddress) *celler.OrderAddress {
	if a == nil {
		return nil
	}
	return &celler.OrderAddress{
		Street:     a.StreetAddress,
		Province:   a.State,
		PostalCode: a.Zip,
		City:       a.City,
		Country:    a.Country,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
