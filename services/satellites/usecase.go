package satellites

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks sattrack/services/satellites SatelliteUC

// SatelliteUC represents the satellite usecase contract
type SatelliteUC interface {
	ListSatellites(ctx context.Context) ([]models.SatelliteSummary, error)
	GetSatellite(ctx context.Context, id int64) (*models.Satellite, error)
	CreateSatellite(ctx context.Context, req *models.CreateSatelliteRequest) (*models.Satellite, error)
	UpdateSatellite(ctx context.Context, id int64, req *models.UpdateSatelliteRequest) error
	DeleteSatellite(ctx context.Context, id int64) error
}
