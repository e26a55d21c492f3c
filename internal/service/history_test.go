package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-service/internal/model"
)

func alternatingRecords(now time.Time, count int) []model.DistributionRecord {
	records := make([]model.DistributionRecord, 0, count)
	for i := 0; i < count; i++ {
		fuelType := model.FuelPetrol
		if i%2 == 1 {
			fuelType = model.FuelDiesel
		}
		records = append(records, model.DistributionRecord{
			ID:          uuid.New(),
			StationID:   uuid.New(),
			StationName: fmt.Sprintf("Station %d", i),
			FuelAmount:  float64(100 + i),
			FuelType:    fuelType,
			Timestamp:   now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return records
}

func TestFilterSortPaginate_Composition(t *testing.T) {
	now := time.Date(2024, time.September, 29, 12, 0, 0, 0, time.UTC)
	records := alternatingRecords(now, 25)

	diesel := model.FuelDiesel
	filtered := FilterDistributions(records, model.HistoryFilter{FuelType: &diesel, Range: model.RangeAll}, now)
	require.Len(t, filtered, 12)

	sorted := SortDistributions(filtered)
	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].Timestamp.After(sorted[i-1].Timestamp),
			"records must be descending by timestamp")
	}

	page := PaginateDistributions(sorted, 2, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.TotalItems)
	assert.Len(t, page.Items, 2)
}

func TestFilterDistributions_RangeKinds(t *testing.T) {
	now := time.Date(2024, time.September, 29, 12, 0, 0, 0, time.UTC)
	records := []model.DistributionRecord{
		{FuelType: model.FuelPetrol, Timestamp: now.Add(-2 * time.Hour)},                // today
		{FuelType: model.FuelPetrol, Timestamp: now.AddDate(0, 0, -3)},                  // this week
		{FuelType: model.FuelPetrol, Timestamp: now.AddDate(0, 0, -20)},                 // this month
		{FuelType: model.FuelPetrol, Timestamp: now.AddDate(0, -2, 0)},                  // older
		{FuelType: model.FuelPetrol, Timestamp: now.Add(-13 * time.Hour).Add(-time.Hour)}, // yesterday late
	}

	assert.Len(t, FilterDistributions(records, model.HistoryFilter{Range: model.RangeAll}, now), 5)
	assert.Len(t, FilterDistributions(records, model.HistoryFilter{Range: model.RangeToday}, now), 1)
	assert.Len(t, FilterDistributions(records, model.HistoryFilter{Range: model.RangeLastWeek}, now), 3)
	assert.Len(t, FilterDistributions(records, model.HistoryFilter{Range: model.RangeLastMonth}, now), 4)
}

func TestFilterDistributions_TodayIsCalendarDayNotRollingWindow(t *testing.T) {
	now := time.Date(2024, time.September, 29, 1, 0, 0, 0, time.UTC)
	records := []model.DistributionRecord{
		// two hours ago but previous calendar day
		{Timestamp: now.Add(-2 * time.Hour)},
		{Timestamp: now.Add(-30 * time.Minute)},
	}

	matched := FilterDistributions(records, model.HistoryFilter{Range: model.RangeToday}, now)
	require.Len(t, matched, 1)
	assert.Equal(t, records[1].Timestamp, matched[0].Timestamp)
}

func TestSortDistributions_StableOnTies(t *testing.T) {
	ts := time.Date(2024, time.September, 29, 10, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()
	records := []model.DistributionRecord{
		{ID: first, Timestamp: ts},
		{ID: second, Timestamp: ts},
	}

	sorted := SortDistributions(records)
	require.Len(t, sorted, 2)
	assert.Equal(t, first, sorted[0].ID)
	assert.Equal(t, second, sorted[1].ID)
}

func TestPaginateDistributions_Bounds(t *testing.T) {
	now := time.Now()
	records := alternatingRecords(now, 5)

	page := PaginateDistributions(records, 3, 2)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 1)

	beyond := PaginateDistributions(records, 9, 2)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 3, beyond.TotalPages)

	empty := PaginateDistributions(nil, 1, 10)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 1, ClampPage(4, 0))
}
