package repository

import (
	"context"
	"fmt"
	"strconv"

	"sattrack/internal/pkg/constants"
	"sattrack/internal/pkg/database"
	"sattrack/internal/pkg/models"
	"sattrack/services/tracker"
)

// LiveCacheRepo keeps the latest fetched position per satellite in Redis
type LiveCacheRepo struct {
	redisClient *database.RedisClient
}

// NewLiveCacheRepo creates a new live cache repository
func NewLiveCacheRepo(redisClient *database.RedisClient) tracker.LiveCache {
	return &LiveCacheRepo{
		redisClient: redisClient,
	}
}

// SetLatest stores the latest position for a NORAD id with a TTL
func (r *LiveCacheRepo) SetLatest(ctx context.Context, noradID int, position *models.Position) error {
	key := fmt.Sprintf(constants.KeyLatestPosition, noradID)

	fields := map[string]interface{}{
		constants.FieldTimestamp: strconv.FormatInt(position.Timestamp, 10),
		constants.FieldLatitude:  strconv.FormatFloat(position.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(position.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   position.Geohash,
	}
	if position.AltitudeKm != nil {
		fields[constants.FieldAltitudeKm] = strconv.FormatFloat(*position.AltitudeKm, 'f', -1, 64)
	}
	if position.VelocityKmh != nil {
		fields[constants.FieldVelocityKmh] = strconv.FormatFloat(*position.VelocityKmh, 'f', -1, 64)
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to cache latest position: %w", err)
	}

	if err := r.redisClient.Expire(ctx, key, constants.LatestPositionTTL); err != nil {
		return fmt.Errorf("failed to set cache TTL: %w", err)
	}

	return nil
}

// GetLatest retrieves the cached latest position for a NORAD id
func (r *LiveCacheRepo) GetLatest(ctx context.Context, noradID int) (*models.Position, error) {
	key := fmt.Sprintf(constants.KeyLatestPosition, noradID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldTimestamp,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldAltitudeKm,
		constants.FieldVelocityKmh,
		constants.FieldGeohash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached position: %w", err)
	}

	// HMGET returns nils when the key is absent or expired
	if len(values) < 3 || values[0] == nil || values[1] == nil || values[2] == nil {
		return nil, models.ErrPositionNotFound
	}

	timestamp, err := parseCachedInt(values[0])
	if err != nil {
		return nil, fmt.Errorf("invalid cached timestamp: %w", err)
	}
	latitude, err := parseCachedFloat(values[1])
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	longitude, err := parseCachedFloat(values[2])
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}

	position := &models.Position{
		Timestamp: timestamp,
		Latitude:  latitude,
		Longitude: longitude,
	}

	if len(values) > 3 && values[3] != nil {
		altitude, err := parseCachedFloat(values[3])
		if err == nil {
			position.AltitudeKm = &altitude
		}
	}
	if len(values) > 4 && values[4] != nil {
		velocity, err := parseCachedFloat(values[4])
		if err == nil {
			position.VelocityKmh = &velocity
		}
	}
	if len(values) > 5 && values[5] != nil {
		if geohash, ok := values[5].(string); ok {
			position.Geohash = geohash
		}
	}

	return position, nil
}

func parseCachedInt(value interface{}) (int64, error) {
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected cache value type %T", value)
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseCachedFloat(value interface{}) (float64, error) {
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected cache value type %T", value)
	}
	return strconv.ParseFloat(s, 64)
}
