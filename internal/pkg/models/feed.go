package models

// FeedPosition is a single sample returned by the upstream position feed
// (wheretheiss.at JSON shape)
type FeedPosition struct {
	Name      string  `json:"name"`
	NoradID   int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Velocity  float64 `json:"velocity"`
	Timestamp int64   `json:"timestamp"`
}

// Live position sources
const (
	SourceLive  = "live"
	SourceCache = "cache"
)

// LivePosition is the response body for the live position endpoint
type LivePosition struct {
	Source      string   `json:"source"`
	Timestamp   int64    `json:"timestamp"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AltitudeKm  *float64 `json:"altitude_km"`
	VelocityKmh *float64 `json:"velocity_kmh"`
	Geohash     string   `json:"geohash,omitempty"`
}
