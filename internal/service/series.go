package service

import (
	"sort"

	"distribution-service/internal/model"
)

// BuildDailySeries selects the most recent windowDays distinct dates
// present in distributed and pairs each with the pumped total for the
// same day, zero when absent. Output is ascending by real date value;
// string ordering of keys is never used.
func BuildDailySeries(distributed, pumped map[model.DayKey]float64, windowDays int) []model.DailyPoint {
	if windowDays <= 0 || len(distributed) == 0 {
		return []model.DailyPoint{}
	}

	days := make([]model.DayKey, 0, len(distributed))
	for day := range distributed {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	if len(days) > windowDays {
		days = days[len(days)-windowDays:]
	}

	series := make([]model.DailyPoint, 0, len(days))
	for _, day := range days {
		series = append(series, model.DailyPoint{
			Date:        day,
			Distributed: distributed[day],
			Pumped:      pumped[day],
		})
	}
	return series
}

// BuildMonthlySeries emits one point per month present in distributed,
// in true chronological order (year then month). Pumped totals default
// to zero; months present only in pumped are not surfaced, keeping the
// distribution-first framing of the dashboard.
func BuildMonthlySeries(distributed, pumped map[model.MonthKey]float64) []model.MonthlyPoint {
	months := make([]model.MonthKey, 0, len(distributed))
	for month := range distributed {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	series := make([]model.MonthlyPoint, 0, len(months))
	for _, month := range months {
		series = append(series, model.MonthlyPoint{
			Year:        month.Year,
			Month:       month.Month,
			Distributed: distributed[month],
			Pumped:      pumped[month],
		})
	}
	return series
}
