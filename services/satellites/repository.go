package satellites

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks sattrack/services/satellites SatelliteRepo

// SatelliteRepo represents the satellite repository contract
type SatelliteRepo interface {
	List(ctx context.Context) ([]models.SatelliteSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Satellite, error)
	GetByNoradID(ctx context.Context, noradID int) (*models.Satellite, error)
	Create(ctx context.Context, satellite *models.Satellite) error
	Update(ctx context.Context, id int64, req *models.UpdateSatelliteRequest) error
	Delete(ctx context.Context, id int64) error

	// EnsureSatellite returns the satellite with the given NORAD id,
	// creating it when missing. Safe against concurrent creation.
	EnsureSatellite(ctx context.Context, noradID int, name string) (*models.Satellite, error)
}
