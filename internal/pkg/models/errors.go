package models

import "errors"

// Sentinel errors surfaced by repositories and usecases, mapped to HTTP
// status codes in the handlers
var (
	ErrSatelliteNotFound       = errors.New("satellite not found")
	ErrPositionNotFound        = errors.New("position not found")
	ErrDuplicateNoradID        = errors.New("norad_id already exists")
	ErrNoFieldsToUpdate        = errors.New("no fields to update")
	ErrInvalidSatelliteRequest = errors.New("name and norad_id are required")
	ErrInvalidPositionRequest  = errors.New("satellite_id, latitude and longitude are required")
	ErrMissingSelector         = errors.New("satellite_id or norad_id required")
)
