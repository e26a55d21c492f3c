package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS fuel_stations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS distributions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		fuel_station_id UUID NOT NULL REFERENCES fuel_stations (id),
		fuel_amount DOUBLE PRECISION NOT NULL CHECK (fuel_amount >= 0),
		fuel_type TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS pump_transactions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		fuel_station_id UUID NOT NULL REFERENCES fuel_stations (id),
		pumped_amount DOUBLE PRECISION NOT NULL CHECK (pumped_amount >= 0),
		recorded_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_stations_status ON fuel_stations (status);`,
	`CREATE INDEX IF NOT EXISTS idx_distributions_timestamp ON distributions (timestamp);`,
	`CREATE INDEX IF NOT EXISTS idx_distributions_station ON distributions (fuel_station_id);`,
	`CREATE INDEX IF NOT EXISTS idx_pump_transactions_recorded_at ON pump_transactions (recorded_at);`,
	`CREATE INDEX IF NOT EXISTS idx_pump_transactions_station ON pump_transactions (fuel_station_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
