package positions

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks sattrack/services/positions PositionRepo

// PositionRepo represents the position repository contract.
// Listing queries return rows newest first.
type PositionRepo interface {
	List(ctx context.Context, satelliteID int64, limit int) ([]models.Position, error)
	Create(ctx context.Context, position *models.Position) error
	Update(ctx context.Context, id int64, req *models.UpdatePositionRequest) error
	Delete(ctx context.Context, id int64) error

	HistoryByNorad(ctx context.Context, noradID, limit int) ([]models.Position, error)
	LatestByNorad(ctx context.Context, noradID int) (*models.Position, error)
	StatsByNorad(ctx context.Context, noradID int) (*models.TrackStats, error)
}
