package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"distribution-service/internal/model"
)

func TestSummarizeToday_Scalars(t *testing.T) {
	now := time.Date(2024, time.September, 29, 15, 0, 0, 0, time.UTC)
	alpha := uuid.New()
	beta := uuid.New()

	records := []model.DistributionRecord{
		{StationID: alpha, StationName: "Alpha", FuelType: model.FuelPetrol, FuelAmount: 100},
		{StationID: beta, StationName: "Beta", FuelType: model.FuelDiesel, FuelAmount: 300},
		{StationID: alpha, StationName: "Alpha", FuelType: model.FuelPetrol, FuelAmount: 150},
	}

	summary := SummarizeToday(records, now)

	assert.Equal(t, 550.0, summary.TodayTotal)
	assert.Equal(t, 2, summary.DistinctStation)
	assert.Equal(t, model.FuelDiesel, summary.TopFuelType.FuelType)
	assert.Equal(t, 300.0, summary.TopFuelType.Amount)
	assert.Equal(t, beta, summary.TopStation.StationID)
	assert.Equal(t, "Beta", summary.TopStation.StationName)
	assert.Equal(t, now, summary.GeneratedAt)
}

func TestSummarizeToday_TieBreakIsFirstEncountered(t *testing.T) {
	now := time.Now()
	first := uuid.New()
	second := uuid.New()

	records := []model.DistributionRecord{
		{StationID: first, StationName: "First", FuelType: model.FuelDiesel, FuelAmount: 200},
		{StationID: second, StationName: "Second", FuelType: model.FuelPetrol, FuelAmount: 200},
	}

	summary := SummarizeToday(records, now)

	assert.Equal(t, model.FuelDiesel, summary.TopFuelType.FuelType)
	assert.Equal(t, first, summary.TopStation.StationID)
}

func TestSummarizeToday_EmptySnapshot(t *testing.T) {
	summary := SummarizeToday(nil, time.Now())

	assert.Equal(t, 0.0, summary.TodayTotal)
	assert.Equal(t, 0, summary.DistinctStation)
	assert.Empty(t, summary.TopFuelType.FuelType)
	assert.Equal(t, uuid.Nil, summary.TopStation.StationID)
}
