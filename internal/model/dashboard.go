package model

import (
	"time"

	"github.com/google/uuid"
)

// DashboardSummary carries the scalar cards of the admin dashboard,
// all computed over today's distribution snapshot.
type DashboardSummary struct {
	TodayTotal      float64       `json:"today_total"`
	TopFuelType     FuelTypeTotal `json:"top_fuel_type"`
	DistinctStation int           `json:"distinct_stations"`
	TopStation      StationTotal  `json:"top_station"`
	GeneratedAt     time.Time     `json:"generated_at"`
}

type FuelTypeTotal struct {
	FuelType FuelType `json:"fuel_type"`
	Amount   float64  `json:"amount"`
}

type StationTotal struct {
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	Amount      float64   `json:"amount"`
}
