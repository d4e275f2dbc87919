package service

import (
	"context"
	"log/slog"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// AddressService manages the caller's saved addresses. Every operation
// needs the caller's token.
type AddressService struct {
	addresses adapter.AddressAdapter
	logger    *slog.Logger
}

// NewAddressService creates a new address service.
func NewAddressService(addresses adapter.AddressAdapter, logger *slog.Logger) *AddressService {
	return &AddressService{
		addresses: addresses,
		logger:    logger,
	}
}

// List returns the caller's addresses.
func (s *AddressService) List(ctx context.Context) ([]storefront.Address, error) {
	if err := requireToken(ctx); err != nil {
		return nil, err
	}
	return s.addresses.List(ctx)
}

// Get returns one of the caller's addresses.
func (s *AddressService) Get(ctx context.Context, id int64) (storefront.Address, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.Address{}, err
	}
	return s.addresses.Get(ctx, id)
}

// Create saves a new address.
func (s *AddressService) Create(ctx context.Context, in storefront.AddressInput) (storefront.Address, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.Address{}, err
	}
	return s.addresses.Create(ctx, in)
}

// Update replaces an address.
func (s *AddressService) Update(ctx context.Context, id int64, in storefront.AddressInput) (storefront.Address, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.Address{}, err
	}
	return s.addresses.Update(ctx, id, in)
}

// Delete removes an address.
func (s *AddressService) Delete(ctx context.Context, id int64) (storefront.CoreResponse, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.CoreResponse{}, err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return storefront.CoreResponse{}, err
	}
	return storefront.CoreResponse{Success: true, Message: "Address deleted successfully"}, nil
}
