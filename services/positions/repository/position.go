package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"sattrack/internal/pkg/models"
	"sattrack/internal/utils"
	"sattrack/services/positions"
)

// PositionRepo manages position rows in PostgreSQL
type PositionRepo struct {
	db *sqlx.DB
}

// NewPositionRepo creates a new position repository
func NewPositionRepo(db *sqlx.DB) positions.PositionRepo {
	return &PositionRepo{db: db}
}

// List returns positions for a satellite, newest first
func (r *PositionRepo) List(ctx context.Context, satelliteID int64, limit int) ([]models.Position, error) {
	query := `
		SELECT id, satellite_id, "timestamp", latitude, longitude, altitude_km, velocity_kmh, geohash, created_at
		FROM positions
		WHERE satellite_id = $1
		ORDER BY "timestamp" DESC
		LIMIT $2
	`

	rows := []models.Position{}
	if err := r.db.SelectContext(ctx, &rows, query, satelliteID, limit); err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	return rows, nil
}

// Create inserts a new position row
func (r *PositionRepo) Create(ctx context.Context, position *models.Position) error {
	position.CreatedAt = time.Now()

	query := `
		INSERT INTO positions (satellite_id, "timestamp", latitude, longitude, altitude_km, velocity_kmh, geohash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		position.SatelliteID,
		position.Timestamp,
		position.Latitude,
		position.Longitude,
		position.AltitudeKm,
		position.VelocityKmh,
		position.Geohash,
		position.CreatedAt,
	).Scan(&position.ID)
	if err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// Update applies a partial update to a position row. When either
// coordinate changes the stored geohash is recomputed from the merged
// coordinates.
func (r *PositionRepo) Update(ctx context.Context, id int64, req *models.UpdatePositionRequest) error {
	fields := []string{}
	args := []interface{}{}

	if req.Timestamp != nil {
		args = append(args, *req.Timestamp)
		fields = append(fields, fmt.Sprintf(`"timestamp" = $%d`, len(args)))
	}
	if req.Latitude != nil || req.Longitude != nil {
		current, err := r.getByID(ctx, id)
		if err != nil {
			return err
		}

		latitude := current.Latitude
		longitude := current.Longitude
		if req.Latitude != nil {
			latitude = *req.Latitude
		}
		if req.Longitude != nil {
			longitude = *req.Longitude
		}

		args = append(args, latitude)
		fields = append(fields, fmt.Sprintf("latitude = $%d", len(args)))
		args = append(args, longitude)
		fields = append(fields, fmt.Sprintf("longitude = $%d", len(args)))
		args = append(args, utils.EncodePoint(latitude, longitude))
		fields = append(fields, fmt.Sprintf("geohash = $%d", len(args)))
	}
	if req.AltitudeKm != nil {
		args = append(args, *req.AltitudeKm)
		fields = append(fields, fmt.Sprintf("altitude_km = $%d", len(args)))
	}
	if req.VelocityKmh != nil {
		args = append(args, *req.VelocityKmh)
		fields = append(fields, fmt.Sprintf("velocity_kmh = $%d", len(args)))
	}

	if len(fields) == 0 {
		return models.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE positions SET %s WHERE id = $%d",
		strings.Join(fields, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrPositionNotFound
	}

	return nil
}

// getByID fetches a single position row
func (r *PositionRepo) getByID(ctx context.Context, id int64) (*models.Position, error) {
	query := `
		SELECT id, satellite_id, "timestamp", latitude, longitude, altitude_km, velocity_kmh, geohash, created_at
		FROM positions
		WHERE id = $1
	`

	var position models.Position
	if err := r.db.GetContext(ctx, &position, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return &position, nil
}

// Delete removes a position row
func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrPositionNotFound
	}

	return nil
}

// HistoryByNorad returns positions for a NORAD id, newest first
func (r *PositionRepo) HistoryByNorad(ctx context.Context, noradID, limit int) ([]models.Position, error) {
	query := `
		SELECT p.id, p.satellite_id, p."timestamp", p.latitude, p.longitude, p.altitude_km, p.velocity_kmh, p.geohash, p.created_at
		FROM positions p
		JOIN satellites s ON s.id = p.satellite_id
		WHERE s.norad_id = $1
		ORDER BY p."timestamp" DESC
		LIMIT $2
	`

	rows := []models.Position{}
	if err := r.db.SelectContext(ctx, &rows, query, noradID, limit); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return rows, nil
}

// LatestByNorad returns the newest stored position for a NORAD id
func (r *PositionRepo) LatestByNorad(ctx context.Context, noradID int) (*models.Position, error) {
	query := `
		SELECT p.id, p.satellite_id, p."timestamp", p.latitude, p.longitude, p.altitude_km, p.velocity_kmh, p.geohash, p.created_at
		FROM positions p
		JOIN satellites s ON s.id = p.satellite_id
		WHERE s.norad_id = $1
		ORDER BY p."timestamp" DESC
		LIMIT 1
	`

	var position models.Position
	if err := r.db.GetContext(ctx, &position, query, noradID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get latest position: %w", err)
	}

	return &position, nil
}

// StatsByNorad summarizes the stored history for a NORAD id
func (r *PositionRepo) StatsByNorad(ctx context.Context, noradID int) (*models.TrackStats, error) {
	query := `
		SELECT COUNT(*) AS cnt, MIN(p."timestamp") AS min_ts, MAX(p."timestamp") AS max_ts
		FROM positions p
		JOIN satellites s ON s.id = p.satellite_id
		WHERE s.norad_id = $1
	`

	var row struct {
		Count int64  `db:"cnt"`
		MinTs *int64 `db:"min_ts"`
		MaxTs *int64 `db:"max_ts"`
	}
	if err := r.db.GetContext(ctx, &row, query, noradID); err != nil {
		return nil, fmt.Errorf("failed to get track stats: %w", err)
	}

	return &models.TrackStats{
		Points:         row.Count,
		FirstTimestamp: row.MinTs,
		LastTimestamp:  row.MaxTs,
	}, nil
}
