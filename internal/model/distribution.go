package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FuelType string

const (
	FuelPetrol FuelType = "PETROL"
	FuelDiesel FuelType = "DIESEL"
)

// ParseFuelType matches case-insensitively; empty input and "all" mean
// no fuel type constraint.
func ParseFuelType(raw string) (FuelType, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(FuelPetrol):
		return FuelPetrol, true
	case string(FuelDiesel):
		return FuelDiesel, true
	default:
		return "", false
	}
}

// DistributionRecord is one fuel delivery to a station. Records are
// immutable once written; the station name is denormalized for read paths.
type DistributionRecord struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	FuelAmount  float64   `json:"fuel_amount"`
	FuelType    FuelType  `json:"fuel_type"`
	Timestamp   time.Time `json:"timestamp"`
}

// PumpTransaction is one dispensing event recorded by a station.
type PumpTransaction struct {
	ID           uuid.UUID `json:"id"`
	StationID    uuid.UUID `json:"station_id"`
	PumpedAmount float64   `json:"pumped_amount"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// StationPumped is a per-station pumped-volume total for a single day.
type StationPumped struct {
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	TotalPumped float64   `json:"total_pumped"`
}
