package positions

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks sattrack/services/positions PositionUC

// PositionUC represents the position usecase contract. History, Stats and
// ExportHistoryCSV operate on the tracked satellite; History returns rows
// oldest first for chronological plotting.
type PositionUC interface {
	ListPositions(ctx context.Context, filter *models.ListPositionsFilter) ([]models.Position, error)
	CreatePosition(ctx context.Context, req *models.CreatePositionRequest) (*models.Position, error)
	UpdatePosition(ctx context.Context, id int64, req *models.UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id int64) error

	History(ctx context.Context, limit int) ([]models.Position, error)
	Stats(ctx context.Context) (*models.TrackStats, error)
	ExportHistoryCSV(ctx context.Context, limit int) ([]byte, error)
}
