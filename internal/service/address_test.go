package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

func TestAddressService_NeedsToken(t *testing.T) {
	addresses := new(mockAddressAdapter)
	svc := NewAddressService(addresses, newTestLogger())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, apperrors.ErrTokenRequired)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrTokenRequired)
	_, err = svc.Create(ctx, storefront.AddressInput{Title: "Home"})
	assert.ErrorIs(t, err, apperrors.ErrTokenRequired)
	_, err = svc.Update(ctx, 1, storefront.AddressInput{Title: "Home"})
	assert.ErrorIs(t, err, apperrors.ErrTokenRequired)
	_, err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrTokenRequired)

	assert.Empty(t, addresses.Calls)
}

func TestAddressService_Delete(t *testing.T) {
	addresses := new(mockAddressAdapter)
	svc := NewAddressService(addresses, newTestLogger())
	ctx := upstream.WithToken(context.Background(), "caller-token")

	addresses.On("Delete", ctx, int64(3)).Return(nil)

	got, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, storefront.CoreResponse{Success: true, Message: "Address deleted successfully"}, got)
}

func TestAddressService_ListPassesThrough(t *testing.T) {
	addresses := new(mockAddressAdapter)
	svc := NewAddressService(addresses, newTestLogger())
	ctx := upstream.WithToken(context.Background(), "caller-token")

	addresses.On("List", mock.Anything).Return([]storefront.Address{{ID: 1, Title: "Home"}}, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Home", got[0].Title)
}
