package models

import "time"

// Satellite represents a tracked satellite
type Satellite struct {
	ID        int64     `json:"id" db:"id"`
	NoradID   int       `json:"norad_id" db:"norad_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SatelliteSummary is a satellite row with its position count, as shown
// on the admin listing
type SatelliteSummary struct {
	Satellite
	PositionCount int64 `json:"position_count" db:"position_count"`
}

// CreateSatelliteRequest is the payload for creating a satellite
type CreateSatelliteRequest struct {
	NoradID *int   `json:"norad_id" form:"norad_id"`
	Name    string `json:"name" form:"name"`
}

// UpdateSatelliteRequest is the payload for a partial satellite update.
// Nil fields are left untouched.
type UpdateSatelliteRequest struct {
	NoradID *int    `json:"norad_id" form:"norad_id"`
	Name    *string `json:"name" form:"name"`
}
