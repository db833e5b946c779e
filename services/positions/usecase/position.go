package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	"sattrack/internal/utils"
	"sattrack/services/positions"
	"sattrack/services/satellites"
)

// History listing limits, matching the admin API contract
const (
	DefaultListLimit = 50
	MaxListLimit     = 1000
	DefaultCSVLimit  = 500
	MaxCSVLimit      = 5000
)

// PositionUC implements position history and admin operations
type PositionUC struct {
	positionRepo  positions.PositionRepo
	satelliteRepo satellites.SatelliteRepo
	cfg           *models.Config
}

// NewPositionUC creates a new position usecase instance
func NewPositionUC(
	positionRepo positions.PositionRepo,
	satelliteRepo satellites.SatelliteRepo,
	cfg *models.Config,
) *PositionUC {
	return &PositionUC{
		positionRepo:  positionRepo,
		satelliteRepo: satelliteRepo,
		cfg:           cfg,
	}
}

// clampLimit bounds a requested limit to [1, max], falling back to def
// when unset
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// ListPositions lists positions selected by satellite id or NORAD id,
// newest first. An unknown NORAD id yields an empty list.
func (uc *PositionUC) ListPositions(ctx context.Context, filter *models.ListPositionsFilter) ([]models.Position, error) {
	limit := clampLimit(filter.Limit, DefaultListLimit, MaxListLimit)

	satelliteID := filter.SatelliteID
	if satelliteID == nil && filter.NoradID != nil {
		satellite, err := uc.satelliteRepo.GetByNoradID(ctx, *filter.NoradID)
		if err != nil {
			if errors.Is(err, models.ErrSatelliteNotFound) {
				return []models.Position{}, nil
			}
			return nil, err
		}
		satelliteID = &satellite.ID
	}

	if satelliteID == nil {
		return nil, models.ErrMissingSelector
	}

	return uc.positionRepo.List(ctx, *satelliteID, limit)
}

// CreatePosition validates and stores a manually submitted position row
func (uc *PositionUC) CreatePosition(ctx context.Context, req *models.CreatePositionRequest) (*models.Position, error) {
	if req.SatelliteID == nil || req.Latitude == nil || req.Longitude == nil {
		return nil, models.ErrInvalidPositionRequest
	}

	// The satellite must exist; the FK would catch this too, but a lookup
	// gives the caller a clean 404 instead of a constraint error
	if _, err := uc.satelliteRepo.GetByID(ctx, *req.SatelliteID); err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()
	if req.Timestamp != nil && *req.Timestamp > 0 {
		timestamp = *req.Timestamp
	}

	position := &models.Position{
		SatelliteID: *req.SatelliteID,
		Timestamp:   timestamp,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		AltitudeKm:  req.AltitudeKm,
		VelocityKmh: req.VelocityKmh,
		Geohash:     utils.EncodePoint(*req.Latitude, *req.Longitude),
	}

	if err := uc.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}

	logger.Info("Position created",
		logger.Int64("position_id", position.ID),
		logger.Int64("satellite_id", position.SatelliteID),
		logger.Int64("timestamp", position.Timestamp))

	return position, nil
}

// UpdatePosition applies a partial update
func (uc *PositionUC) UpdatePosition(ctx context.Context, id int64, req *models.UpdatePositionRequest) error {
	if req.Timestamp == nil && req.Latitude == nil && req.Longitude == nil &&
		req.AltitudeKm == nil && req.VelocityKmh == nil {
		return models.ErrNoFieldsToUpdate
	}

	return uc.positionRepo.Update(ctx, id, req)
}

// DeletePosition removes a position row
func (uc *PositionUC) DeletePosition(ctx context.Context, id int64) error {
	return uc.positionRepo.Delete(ctx, id)
}

// History returns the tracked satellite's positions oldest first
func (uc *PositionUC) History(ctx context.Context, limit int) ([]models.Position, error) {
	limit = clampLimit(limit, DefaultListLimit, MaxListLimit)

	rows, err := uc.positionRepo.HistoryByNorad(ctx, uc.cfg.Tracker.NoradID, limit)
	if err != nil {
		return nil, err
	}

	// Repository returns newest first; plotting wants chronological order
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return rows, nil
}

// Stats summarizes the tracked satellite's stored history
func (uc *PositionUC) Stats(ctx context.Context) (*models.TrackStats, error) {
	return uc.positionRepo.StatsByNorad(ctx, uc.cfg.Tracker.NoradID)
}

// ExportHistoryCSV renders the tracked satellite's history as CSV,
// oldest first
func (uc *PositionUC) ExportHistoryCSV(ctx context.Context, limit int) ([]byte, error) {
	limit = clampLimit(limit, DefaultCSVLimit, MaxCSVLimit)

	rows, err := uc.positionRepo.HistoryByNorad(ctx, uc.cfg.Tracker.NoradID, limit)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"timestamp", "latitude", "longitude", "altitude_km", "velocity_kmh"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.Timestamp, 10),
			strconv.FormatFloat(row.Latitude, 'f', -1, 64),
			strconv.FormatFloat(row.Longitude, 'f', -1, 64),
			formatOptionalFloat(row.AltitudeKm),
			formatOptionalFloat(row.VelocityKmh),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
