package constants

import "time"

// Redis keys
const (
	// KeyLatestPosition holds the latest fetched position per NORAD id,
	// formatted with the NORAD catalog number
	KeyLatestPosition = "sattrack:position:latest:%d"
)

// Redis hash fields for the latest position
const (
	FieldTimestamp   = "timestamp"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldAltitudeKm  = "altitude_km"
	FieldVelocityKmh = "velocity_kmh"
	FieldGeohash     = "geohash"
)

// LatestPositionTTL bounds how stale the cache fallback can get. The DB
// remains the fallback of last resort once this expires.
const LatestPositionTTL = 1 * time.Hour
