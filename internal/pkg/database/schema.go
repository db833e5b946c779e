package database

import (
	"context"
	"fmt"
)

// Idempotent DDL applied at startup
const schema = `
CREATE TABLE IF NOT EXISTS satellites (
	id BIGSERIAL PRIMARY KEY,
	norad_id INTEGER UNIQUE NOT NULL,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS positions (
	id BIGSERIAL PRIMARY KEY,
	satellite_id BIGINT NOT NULL REFERENCES satellites(id) ON DELETE CASCADE,
	"timestamp" BIGINT NOT NULL,
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	altitude_km DOUBLE PRECISION,
	velocity_kmh DOUBLE PRECISION,
	geohash TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_positions_sat_ts ON positions (satellite_id, "timestamp");
`

// InitSchema applies the schema to the connected database
func (p *PostgresClient) InitSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
