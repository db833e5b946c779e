package usecase

import (
	"context"
	"strings"

	"sattrack/internal/pkg/logger"
	"sattrack/internal/pkg/models"
	"sattrack/services/satellites"
)

// SatelliteUC implements satellite admin operations
type SatelliteUC struct {
	satelliteRepo satellites.SatelliteRepo
}

// NewSatelliteUC creates a new satellite usecase instance
func NewSatelliteUC(satelliteRepo satellites.SatelliteRepo) *SatelliteUC {
	return &SatelliteUC{
		satelliteRepo: satelliteRepo,
	}
}

// ListSatellites returns all satellites with their position counts
func (uc *SatelliteUC) ListSatellites(ctx context.Context) ([]models.SatelliteSummary, error) {
	return uc.satelliteRepo.List(ctx)
}

// GetSatellite returns a single satellite by id
func (uc *SatelliteUC) GetSatellite(ctx context.Context, id int64) (*models.Satellite, error) {
	return uc.satelliteRepo.GetByID(ctx, id)
}

// CreateSatellite validates and stores a new satellite
func (uc *SatelliteUC) CreateSatellite(ctx context.Context, req *models.CreateSatelliteRequest) (*models.Satellite, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.NoradID == nil {
		return nil, models.ErrInvalidSatelliteRequest
	}

	satellite := &models.Satellite{
		NoradID: *req.NoradID,
		Name:    name,
	}

	if err := uc.satelliteRepo.Create(ctx, satellite); err != nil {
		return nil, err
	}

	logger.Info("Satellite created",
		logger.Int64("satellite_id", satellite.ID),
		logger.Int("norad_id", satellite.NoradID),
		logger.String("name", satellite.Name))

	return satellite, nil
}

// UpdateSatellite applies a partial update
func (uc *SatelliteUC) UpdateSatellite(ctx context.Context, id int64, req *models.UpdateSatelliteRequest) error {
	if req.Name == nil && req.NoradID == nil {
		return models.ErrNoFieldsToUpdate
	}

	return uc.satelliteRepo.Update(ctx, id, req)
}

// DeleteSatellite removes a satellite and, via cascade, its positions
func (uc *SatelliteUC) DeleteSatellite(ctx context.Context, id int64) error {
	if err := uc.satelliteRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Satellite deleted", logger.Int64("satellite_id", id))
	return nil
}
