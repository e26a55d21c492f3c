package service

import (
	"time"

	"github.com/google/uuid"

	"distribution-service/internal/model"
)

// SummarizeToday derives the dashboard scalar cards from today's
// distribution snapshot. Ties for the top fuel type and top station go
// to the candidate encountered first in record order.
func SummarizeToday(records []model.DistributionRecord, now time.Time) model.DashboardSummary {
	summary := model.DashboardSummary{GeneratedAt: now}

	fuelTotals := make(map[model.FuelType]float64)
	fuelOrder := make([]model.FuelType, 0, 2)
	stationTotals := make(map[uuid.UUID]float64)
	stationOrder := make([]uuid.UUID, 0, len(records))
	stationNames := make(map[uuid.UUID]string)

	for _, rec := range records {
		summary.TodayTotal += rec.FuelAmount

		if _, seen := fuelTotals[rec.FuelType]; !seen {
			fuelOrder = append(fuelOrder, rec.FuelType)
		}
		fuelTotals[rec.FuelType] += rec.FuelAmount

		if _, seen := stationTotals[rec.StationID]; !seen {
			stationOrder = append(stationOrder, rec.StationID)
			stationNames[rec.StationID] = rec.StationName
		}
		stationTotals[rec.StationID] += rec.FuelAmount
	}

	summary.DistinctStation = len(stationTotals)

	for i, ft := range fuelOrder {
		if i == 0 || fuelTotals[ft] > summary.TopFuelType.Amount {
			summary.TopFuelType = model.FuelTypeTotal{FuelType: ft, Amount: fuelTotals[ft]}
		}
	}
	for i, id := range stationOrder {
		if i == 0 || stationTotals[id] > summary.TopStation.Amount {
			summary.TopStation = model.StationTotal{
				StationID:   id,
				StationName: stationNames[id],
				Amount:      stationTotals[id],
			}
		}
	}

	return summary
}
