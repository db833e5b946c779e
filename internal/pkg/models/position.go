package models

import "time"

// Position represents a stored satellite position sample
type Position struct {
	ID          int64     `json:"id" db:"id"`
	SatelliteID int64     `json:"satellite_id" db:"satellite_id"`
	Timestamp   int64     `json:"timestamp" db:"timestamp"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	AltitudeKm  *float64  `json:"altitude_km" db:"altitude_km"`
	VelocityKmh *float64  `json:"velocity_kmh" db:"velocity_kmh"`
	Geohash     string    `json:"geohash" db:"geohash"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreatePositionRequest is the payload for manually creating a position row
type CreatePositionRequest struct {
	SatelliteID *int64   `json:"satellite_id" form:"satellite_id"`
	Timestamp   *int64   `json:"timestamp" form:"timestamp"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
	AltitudeKm  *float64 `json:"altitude_km" form:"altitude_km"`
	VelocityKmh *float64 `json:"velocity_kmh" form:"velocity_kmh"`
}

// UpdatePositionRequest is the payload for a partial position update.
// Nil fields are left untouched.
type UpdatePositionRequest struct {
	Timestamp   *int64   `json:"timestamp" form:"timestamp"`
	Latitude    *float64 `json:"latitude" form:"latitude"`
	Longitude   *float64 `json:"longitude" form:"longitude"`
	AltitudeKm  *float64 `json:"altitude_km" form:"altitude_km"`
	VelocityKmh *float64 `json:"velocity_kmh" form:"velocity_kmh"`
}

// ListPositionsFilter selects which satellite's positions to list
type ListPositionsFilter struct {
	SatelliteID *int64
	NoradID     *int
	Limit       int
}

// TrackStats summarizes the stored history for a satellite
type TrackStats struct {
	Points         int64  `json:"points"`
	FirstTimestamp *int64 `json:"first_timestamp"`
	LastTimestamp  *int64 `json:"last_timestamp"`
}

// PositionEvent is published to NATS whenever a new position is stored
type PositionEvent struct {
	SatelliteID int64     `json:"satellite_id"`
	NoradID     int       `json:"norad_id"`
	Timestamp   int64     `json:"timestamp"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	AltitudeKm  *float64  `json:"altitude_km"`
	VelocityKmh *float64  `json:"velocity_kmh"`
	Geohash     string    `json:"geohash"`
	RecordedAt  time.Time `json:"recorded_at"`
}
