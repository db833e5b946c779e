package usecase

import (
	"context"
	"errors"
	"time"

	"sattrack/internal/pkg/circuitbreaker"
	"sattrack/internal/pkg/logger"
)

// StartPolling runs the fetch-store-cache-publish cycle on a fixed
// interval until the context is cancelled. A non-positive interval
// disables the poller.
func (uc *TrackerUC) StartPolling(ctx context.Context) {
	interval := time.Duration(uc.cfg.Tracker.PollInterval) * time.Second
	if interval <= 0 {
		logger.Info("Position poller disabled")
		return
	}

	logger.Info("Starting position poller",
		logger.Int("norad_id", uc.cfg.Tracker.NoradID),
		logger.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Position poller stopped")
			return
		case <-ticker.C:
			uc.pollOnce(ctx)
		}
	}
}

// pollOnce runs a single poll cycle, logging failures without aborting
// the loop
func (uc *TrackerUC) pollOnce(ctx context.Context) {
	position, err := uc.fetchAndStore(ctx)
	if err != nil {
		// Open-breaker cycles are routine while the feed is down
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) {
			logger.Debug("Skipping poll cycle, feed breaker open")
			return
		}
		logger.Warn("Poll cycle failed", logger.Err(err))
		return
	}

	logger.Debug("Stored position sample",
		logger.Int64("position_id", position.ID),
		logger.Int64("timestamp", position.Timestamp),
		logger.Float64("latitude", position.Latitude),
		logger.Float64("longitude", position.Longitude))
}
