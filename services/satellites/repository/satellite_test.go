package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sattrack/internal/pkg/models"
)

func setupSatelliteRepoTest(t *testing.T) (*SatelliteRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &SatelliteRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestSatelliteList(t *testing.T) {
	repo, mock, cleanup := setupSatelliteRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "norad_id", "name", "created_at", "position_count"}).
		AddRow(int64(1), 25544, "ISS", now, int64(42)).
		AddRow(int64(2), 48274, "CSS (TIANHE)", now, int64(0))
	mock.ExpectQuery("^\\s*SELECT s.id, s.norad_id, s.name, s.created_at").
		WillReturnRows(rows)

	summaries, err := repo.List(context.Background())

	assert.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 25544, summaries[0].NoradID)
	assert.Equal(t, "ISS", summaries[0].Name)
	assert.Equal(t, int64(42), summaries[0].PositionCount)
	assert.Equal(t, int64(0), summaries[1].PositionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSatelliteGetByID(t *testing.T) {
	testCases := []struct {
		name       string
		id         int64
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, satellite *models.Satellite, err error)
	}{
		{
			name: "Success",
			id:   1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "norad_id", "name", "created_at"}).
					AddRow(int64(1), 25544, "ISS", time.Now())
				mock.ExpectQuery("^SELECT id, norad_id, name, created_at FROM satellites WHERE id").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, satellite *models.Satellite, err error) {
				assert.NoError(t, err)
				require.NotNil(t, satellite)
				assert.Equal(t, 25544, satellite.NoradID)
				assert.Equal(t, "ISS", satellite.Name)
			},
		},
		{
			name: "Not Found",
			id:   99,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT id, norad_id, name, created_at FROM satellites WHERE id").
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, satellite *models.Satellite, err error) {
				assert.ErrorIs(t, err, models.ErrSatelliteNotFound)
				assert.Nil(t, satellite)
			},
		},
		{
			name: "Database Error",
			id:   1,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT id, norad_id, name, created_at FROM satellites WHERE id").
					WithArgs(int64(1)).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, satellite *models.Satellite, err error) {
				assert.Error(t, err)
				assert.Nil(t, satellite)
				assert.Contains(t, err.Error(), "failed to get satellite")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupSatelliteRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			satellite, err := repo.GetByID(context.Background(), tc.id)
			tc.assertFunc(t, satellite, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSatelliteCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^\\s*INSERT INTO satellites").
			WithArgs(25544, "ISS", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		satellite := &models.Satellite{NoradID: 25544, Name: "ISS"}
		err := repo.Create(context.Background(), satellite)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), satellite.ID)
		assert.False(t, satellite.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate NORAD ID", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^\\s*INSERT INTO satellites").
			WithArgs(25544, "ISS", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		err := repo.Create(context.Background(), &models.Satellite{NoradID: 25544, Name: "ISS"})

		assert.ErrorIs(t, err, models.ErrDuplicateNoradID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSatelliteUpdate(t *testing.T) {
	name := "Zarya"
	norad := 25544

	t.Run("Success - Both Fields", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE satellites SET name = \\$1, norad_id = \\$2 WHERE id = \\$3$").
			WithArgs("Zarya", 25544, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), 1, &models.UpdateSatelliteRequest{Name: &name, NoradID: &norad})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Fields", func(t *testing.T) {
		repo, _, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		err := repo.Update(context.Background(), 1, &models.UpdateSatelliteRequest{})

		assert.ErrorIs(t, err, models.ErrNoFieldsToUpdate)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE satellites SET name = \\$1 WHERE id = \\$2$").
			WithArgs("Zarya", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), 99, &models.UpdateSatelliteRequest{Name: &name})

		assert.ErrorIs(t, err, models.ErrSatelliteNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate NORAD ID", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE satellites SET norad_id = \\$1 WHERE id = \\$2$").
			WithArgs(25544, int64(2)).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		err := repo.Update(context.Background(), 2, &models.UpdateSatelliteRequest{NoradID: &norad})

		assert.ErrorIs(t, err, models.ErrDuplicateNoradID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSatelliteDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM satellites WHERE id").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupSatelliteRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^DELETE FROM satellites WHERE id").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, models.ErrSatelliteNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureSatellite(t *testing.T) {
	repo, mock, cleanup := setupSatelliteRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^\\s*INSERT INTO satellites").
		WithArgs(25544, "ISS", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows([]string{"id", "norad_id", "name", "created_at"}).
		AddRow(int64(1), 25544, "ISS", time.Now())
	mock.ExpectQuery("^SELECT id, norad_id, name, created_at FROM satellites WHERE norad_id").
		WithArgs(25544).
		WillReturnRows(rows)

	satellite, err := repo.EnsureSatellite(context.Background(), 25544, "ISS")

	assert.NoError(t, err)
	require.NotNil(t, satellite)
	assert.Equal(t, int64(1), satellite.ID)
	assert.Equal(t, 25544, satellite.NoradID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
