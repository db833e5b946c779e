package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"sattrack/internal/pkg/constants"
	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	natspkg "sattrack/internal/pkg/nats"
	"sattrack/services/tracker"
)

// NATSGateway implements position fan-out over NATS
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) tracker.TrackerGW {
	return &NATSGateway{
		client: client,
	}
}

// PublishPositionEvent publishes a stored position sample
func (g *NATSGateway) PublishPositionEvent(ctx context.Context, event *models.PositionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal position event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectPositionUpdate, data); err != nil {
		logger.Error("Failed to publish position event",
			logger.Int("norad_id", event.NoradID),
			logger.Err(err))
		return fmt.Errorf("failed to publish position event: %w", err)
	}

	logger.Debug("Published position event",
		logger.Int("norad_id", event.NoradID),
		logger.Int64("timestamp", event.Timestamp))

	return nil
}
