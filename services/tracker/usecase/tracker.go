package usecase

import (
	"context"
	"errors"
	"time"

	"sattrack/internal/pkg/circuitbreaker"
	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	"sattrack/internal/pkg/retry"
	"sattrack/internal/utils"
	"sattrack/services/positions"
	"sattrack/services/satellites"
	"sattrack/services/tracker"
)

// TrackerUC fetches live positions, persists them and fans them out
type TrackerUC struct {
	satelliteRepo satellites.SatelliteRepo
	positionRepo  positions.PositionRepo
	feedClient    tracker.FeedClient
	cache         tracker.LiveCache
	trackerGW     tracker.TrackerGW
	retrier       *retry.Retrier
	breaker       *circuitbreaker.CircuitBreaker
	cfg           *models.Config
}

// NewTrackerUC creates a new tracker usecase instance
func NewTrackerUC(
	satelliteRepo satellites.SatelliteRepo,
	positionRepo positions.PositionRepo,
	feedClient tracker.FeedClient,
	cache tracker.LiveCache,
	trackerGW tracker.TrackerGW,
	cfg *models.Config,
	zapLogger *logger.ZapLogger,
) *TrackerUC {
	retryConfig := retry.Config{
		MaxRetries: 2,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			// Breaker rejections are not worth retrying
			return !errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) &&
				!errors.Is(err, circuitbreaker.ErrTooManyRequests)
		},
	}

	return &TrackerUC{
		satelliteRepo: satelliteRepo,
		positionRepo:  positionRepo,
		feedClient:    feedClient,
		cache:         cache,
		trackerGW:     trackerGW,
		retrier:       retry.New(retryConfig, zapLogger),
		breaker:       circuitbreaker.New(circuitbreaker.DefaultConfig("position-feed"), zapLogger),
		cfg:           cfg,
	}
}

// CurrentPosition fetches and stores a live sample. When the feed is
// unavailable it falls back to the Redis cache, then to the newest DB row.
func (uc *TrackerUC) CurrentPosition(ctx context.Context) (*models.LivePosition, error) {
	position, err := uc.fetchAndStore(ctx)
	if err == nil {
		return livePosition(models.SourceLive, position), nil
	}

	logger.Warn("Live fetch failed, falling back to cache", logger.Err(err))

	if cached, cacheErr := uc.cache.GetLatest(ctx, uc.cfg.Tracker.NoradID); cacheErr == nil {
		return livePosition(models.SourceCache, cached), nil
	}

	stored, dbErr := uc.positionRepo.LatestByNorad(ctx, uc.cfg.Tracker.NoradID)
	if dbErr != nil {
		return nil, err
	}

	return livePosition(models.SourceCache, stored), nil
}

// fetchAndStore performs one fetch-store-cache-publish cycle
func (uc *TrackerUC) fetchAndStore(ctx context.Context) (*models.Position, error) {
	var feedPosition *models.FeedPosition

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.breaker.Execute(ctx, func(ctx context.Context) error {
			fetched, err := uc.feedClient.FetchPosition(ctx)
			if err != nil {
				return err
			}
			feedPosition = fetched
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	name := feedPosition.Name
	if name == "" {
		name = uc.cfg.Tracker.SatelliteName
	}

	satellite, err := uc.satelliteRepo.EnsureSatellite(ctx, uc.cfg.Tracker.NoradID, name)
	if err != nil {
		return nil, err
	}

	altitude := feedPosition.Altitude
	velocity := feedPosition.Velocity

	position := &models.Position{
		SatelliteID: satellite.ID,
		Timestamp:   feedPosition.Timestamp,
		Latitude:    feedPosition.Latitude,
		Longitude:   feedPosition.Longitude,
		AltitudeKm:  &altitude,
		VelocityKmh: &velocity,
		Geohash:     utils.EncodePoint(feedPosition.Latitude, feedPosition.Longitude),
	}

	if err := uc.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	// Cache and fan-out failures must not fail the fetch; the row is
	// already persisted
	if err := uc.cache.SetLatest(ctx, uc.cfg.Tracker.NoradID, position); err != nil {
		logger.Warn("Failed to cache latest position", logger.Err(err))
	}

	event := &models.PositionEvent{
		SatelliteID: satellite.ID,
		NoradID:     uc.cfg.Tracker.NoradID,
		Timestamp:   position.Timestamp,
		Latitude:    position.Latitude,
		Longitude:   position.Longitude,
		AltitudeKm:  position.AltitudeKm,
		VelocityKmh: position.VelocityKmh,
		Geohash:     position.Geohash,
		RecordedAt:  time.Now(),
	}
	if err := uc.trackerGW.PublishPositionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish position event", logger.Err(err))
	}

	return position, nil
}

func livePosition(source string, position *models.Position) *models.LivePosition {
	return &models.LivePosition{
		Source:      source,
		Timestamp:   position.Timestamp,
		Latitude:    position.Latitude,
		Longitude:   position.Longitude,
		AltitudeKm:  position.AltitudeKm,
		VelocityKmh: position.VelocityKmh,
		Geohash:     position.Geohash,
	}
}
