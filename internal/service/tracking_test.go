package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

func TestTrackingService_Track(t *testing.T) {
	tracking := new(mockTrackingAdapter)
	svc := NewTrackingService(tracking, newTestLogger())
	ctx := context.Background()

	tracking.On("Track", ctx, "CH-1001").Return(storefront.TrackingView{OrderID: 1001, OrderNumber: "CH-1001"}, nil)

	got, err := svc.Track(ctx, "  CH-1001 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), got.OrderID)
}

func TestTrackingService_EmptyNumber(t *testing.T) {
	tracking := new(mockTrackingAdapter)
	svc := NewTrackingService(tracking, newTestLogger())

	_, err := svc.Track(context.Background(), "   ")

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	tracking.AssertNotCalled(t, "Track", mock.Anything, mock.Anything)
}
