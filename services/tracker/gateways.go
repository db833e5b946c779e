package tracker

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks sattrack/services/tracker FeedClient,TrackerGW

// FeedClient fetches the tracked satellite's current position from the
// upstream feed
type FeedClient interface {
	FetchPosition(ctx context.Context) (*models.FeedPosition, error)
}

// TrackerGW represents the tracker gateway contract for position fan-out
type TrackerGW interface {
	PublishPositionEvent(ctx context.Context, event *models.PositionEvent) error
}
