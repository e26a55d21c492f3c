package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"distribution-service/internal/model"
)

type PumpRepository struct {
	db *gorm.DB
}

func NewPumpRepository(db *gorm.DB) *PumpRepository {
	return &PumpRepository{db: db}
}

func (r *PumpRepository) PumpedTotalsByDay(ctx context.Context, from time.Time) (map[model.DayKey]float64, error) {
	rows, err := r.bucketTotals(ctx, "day", from)
	if err != nil {
		return nil, err
	}
	return dayTotals(rows), nil
}

func (r *PumpRepository) PumpedTotalsByMonth(ctx context.Context, from time.Time) (map[model.MonthKey]float64, error) {
	rows, err := r.bucketTotals(ctx, "month", from)
	if err != nil {
		return nil, err
	}
	return monthTotals(rows), nil
}

// PumpedTodayByStation feeds the per-station leaderboard. Rows keep the
// raw station reference; domain validation happens in the service.
func (r *PumpRepository) PumpedTodayByStation(ctx context.Context, dayStart time.Time) ([]model.StationPumped, error) {
	var rows []model.StationPumped

	err := r.db.WithContext(ctx).
		Table("pump_transactions p").
		Select(`p.fuel_station_id AS station_id,
			COALESCE(s.name, '') AS station_name,
			COALESCE(SUM(p.pumped_amount), 0) AS total_pumped`).
		Joins("LEFT JOIN fuel_stations s ON s.id = p.fuel_station_id").
		Where("p.recorded_at >= ?", dayStart).
		Group("p.fuel_station_id, s.name").
		Order("total_pumped DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PumpRepository) CreatePumpTransaction(ctx context.Context, tx *model.PumpTransaction) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO pump_transactions (id, fuel_station_id, pumped_amount, recorded_at)
			VALUES (?, ?, ?, ?)`,
			tx.ID, tx.StationID, tx.PumpedAmount, tx.RecordedAt).Error
}

func (r *PumpRepository) bucketTotals(ctx context.Context, unit string, from time.Time) ([]bucketRow, error) {
	var rows []bucketRow

	err := r.db.WithContext(ctx).
		Table("pump_transactions").
		Select("DATE_TRUNC('"+unit+"', recorded_at) AS bucket, COALESCE(SUM(pumped_amount), 0) AS total").
		Where("recorded_at >= ?", from).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
