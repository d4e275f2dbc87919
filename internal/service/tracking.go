package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	apperrors "github.com/bringforthjoy101/cellerhut-ecom-api/pkg/errors"
)

// TrackingService serves the public delivery tracking view.
type TrackingService struct {
	tracking adapter.TrackingAdapter
	logger   *slog.Logger
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(tracking adapter.TrackingAdapter, logger *slog.Logger) *TrackingService {
	return &TrackingService{
		tracking: tracking,
		logger:   logger,
	}
}

// Track returns the tracking view for a tracking number. Order numbers are
// tracking numbers upstream, so both routes end here.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string) (storefront.TrackingView, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return storefront.TrackingView{}, apperrors.InvalidInput("tracking number is required")
	}
	return s.tracking.Track(ctx, trackingNumber)
}
