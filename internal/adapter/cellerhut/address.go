package cellerhut

import (
	"context"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

const (
	addressesPath      = authPath + "/addresses"
	addressNotFound    = "Address not found"
	addressFetchFailed = "Failed to fetch addresses"
	addressSaveFailed  = "Failed to save address"
	addressDelFailed   = "Failed to delete address"
)

// AddressAdapter implements adapter.AddressAdapter.
type AddressAdapter struct {
	client *upstream.Client
}

var _ adapter.AddressAdapter = (*AddressAdapter)(nil)

// NewAddressAdapter creates an address adapter.
func NewAddressAdapter(client *upstream.Client) *AddressAdapter {
	return &AddressAdapter{client: client}
}

// List returns the caller's addresses.
func (a *AddressAdapter) List(ctx context.Context) ([]storefront.Address, error) {
	list, err := fetchList[celler.Address](ctx, a.client, addressesPath, nil)
	if err != nil {
		return nil, mapError(err, addressMessages, addressFetchFailed)
	}
	return transform.Map(list.Items, transform.Address), nil
}

// Get returns one of the caller's addresses. The upstream has no single
// address read, so the list is filtered.
func (a *AddressAdapter) Get(ctx context.Context, id int64) (storefront.Address, error) {
	all, err := a.List(ctx)
	if err != nil {
		return storefront.Address{}, err
	}
	for _, addr := range all {
		if addr.ID == id {
			return addr, nil
		}
	}
	return storefront.Address{}, apperrors.NotFound(addressNotFound)
}

// Create saves a new address.
func (a *AddressAdapter) Create(ctx context.Context, in storefront.AddressInput) (storefront.Address, error) {
	var out celler.Address
	if err := a.client.Post(ctx, addressesPath, transform.AddressInput(in), &out); err != nil {
		return storefront.Address{}, mapError(err, addressMessages, addressSaveFailed)
	}
	return transform.Address(out), nil
}

// Update replaces an address.
func (a *AddressAdapter) Update(ctx context.Context, id int64, in storefront.AddressInput) (storefront.Address, error) {
	var out celler.Address
	if err := a.client.Put(ctx, idPath(addressesPath, id), transform.AddressInput(in), &out); err != nil {
		return storefront.Address{}, mapError(err, addressMessages, addressSaveFailed)
	}
	return transform.Address(out), nil
}

// Delete removes an address.
func (a *AddressAdapter) Delete(ctx context.Context, id int64) error {
	err := a.client.Delete(ctx, idPath(addressesPath, id), nil)
	return mapError(err, addressMessages, addressDelFailed)
}
