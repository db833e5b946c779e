package tracker

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks sattrack/services/tracker LiveCache

// LiveCache caches the latest fetched position per satellite
type LiveCache interface {
	SetLatest(ctx context.Context, noradID int, position *models.Position) error
	GetLatest(ctx context.Context, noradID int) (*models.Position, error)
}
