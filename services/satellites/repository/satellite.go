package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"sattrack/internal/pkg/models"
	"sattrack/services/satellites"
)

// Postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

// SatelliteRepo manages satellite rows in PostgreSQL
type SatelliteRepo struct {
	db *sqlx.DB
}

// NewSatelliteRepo creates a new satellite repository
func NewSatelliteRepo(db *sqlx.DB) satellites.SatelliteRepo {
	return &SatelliteRepo{db: db}
}

// List returns all satellites with their position counts, oldest first
func (r *SatelliteRepo) List(ctx context.Context) ([]models.SatelliteSummary, error) {
	query := `
		SELECT s.id, s.norad_id, s.name, s.created_at,
			(SELECT COUNT(*) FROM positions p WHERE p.satellite_id = s.id) AS position_count
		FROM satellites s
		ORDER BY s.id ASC
	`

	summaries := []models.SatelliteSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list satellites: %w", err)
	}

	return summaries, nil
}

// GetByID retrieves a satellite by primary key
func (r *SatelliteRepo) GetByID(ctx context.Context, id int64) (*models.Satellite, error) {
	query := `SELECT id, norad_id, name, created_at FROM satellites WHERE id = $1`

	var satellite models.Satellite
	if err := r.db.GetContext(ctx, &satellite, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSatelliteNotFound
		}
		return nil, fmt.Errorf("failed to get satellite: %w", err)
	}

	return &satellite, nil
}

// GetByNoradID retrieves a satellite by NORAD catalog number
func (r *SatelliteRepo) GetByNoradID(ctx context.Context, noradID int) (*models.Satellite, error) {
	query := `SELECT id, norad_id, name, created_at FROM satellites WHERE norad_id = $1`

	var satellite models.Satellite
	if err := r.db.GetContext(ctx, &satellite, query, noradID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrSatelliteNotFound
		}
		return nil, fmt.Errorf("failed to get satellite: %w", err)
	}

	return &satellite, nil
}

// Create inserts a new satellite
func (r *SatelliteRepo) Create(ctx context.Context, satellite *models.Satellite) error {
	satellite.CreatedAt = time.Now()

	query := `
		INSERT INTO satellites (norad_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, satellite.NoradID, satellite.Name, satellite.CreatedAt).
		Scan(&satellite.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateNoradID
		}
		return fmt.Errorf("failed to insert satellite: %w", err)
	}

	return nil
}

// Update applies a partial update to a satellite
func (r *SatelliteRepo) Update(ctx context.Context, id int64, req *models.UpdateSatelliteRequest) error {
	fields := []string{}
	args := []interface{}{}

	if req.Name != nil {
		args = append(args, strings.TrimSpace(*req.Name))
		fields = append(fields, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.NoradID != nil {
		args = append(args, *req.NoradID)
		fields = append(fields, fmt.Sprintf("norad_id = $%d", len(args)))
	}

	if len(fields) == 0 {
		return models.ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE satellites SET %s WHERE id = $%d",
		strings.Join(fields, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateNoradID
		}
		return fmt.Errorf("failed to update satellite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrSatelliteNotFound
	}

	return nil
}

// Delete removes a satellite; positions cascade at the database level
func (r *SatelliteRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM satellites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete satellite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrSatelliteNotFound
	}

	return nil
}

// EnsureSatellite returns the satellite with the given NORAD id, creating it
// when missing. ON CONFLICT DO NOTHING keeps concurrent callers safe; the
// follow-up select covers the row inserted by the winner.
func (r *SatelliteRepo) EnsureSatellite(ctx context.Context, noradID int, name string) (*models.Satellite, error) {
	query := `
		INSERT INTO satellites (norad_id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (norad_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, noradID, name, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to ensure satellite: %w", err)
	}

	return r.GetByNoradID(ctx, noradID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
