package tracker

import (
	"context"

	"sattrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks sattrack/services/tracker TrackerUC

// TrackerUC represents the tracker usecase contract
type TrackerUC interface {
	// CurrentPosition fetches and stores a live sample, falling back to
	// the cache and then the database when the feed is unavailable
	CurrentPosition(ctx context.Context) (*models.LivePosition, error)
}
