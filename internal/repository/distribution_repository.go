package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"distribution-service/internal/model"
)

type DistributionRepository struct {
	db *gorm.DB
}

func NewDistributionRepository(db *gorm.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

const distributionColumns = `d.id, d.fuel_station_id AS station_id,
	COALESCE(s.name, '') AS station_name, d.fuel_amount, d.fuel_type, d.timestamp`

func (r *DistributionRepository) ListDistributions(ctx context.Context) ([]model.DistributionRecord, error) {
	var records []model.DistributionRecord

	err := r.db.WithContext(ctx).
		Table("distributions d").
		Select(distributionColumns).
		Joins("LEFT JOIN fuel_stations s ON s.id = d.fuel_station_id").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DistributionRepository) ListDistributionsSince(ctx context.Context, since time.Time) ([]model.DistributionRecord, error) {
	var records []model.DistributionRecord

	err := r.db.WithContext(ctx).
		Table("distributions d").
		Select(distributionColumns).
		Joins("LEFT JOIN fuel_stations s ON s.id = d.fuel_station_id").
		Where("d.timestamp >= ?", since).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DistributionRepository) DistributedTotalsByDay(ctx context.Context, from time.Time) (map[model.DayKey]float64, error) {
	rows, err := r.bucketTotals(ctx, "day", from)
	if err != nil {
		return nil, err
	}
	return dayTotals(rows), nil
}

func (r *DistributionRepository) DistributedTotalsByMonth(ctx context.Context, from time.Time) (map[model.MonthKey]float64, error) {
	rows, err := r.bucketTotals(ctx, "month", from)
	if err != nil {
		return nil, err
	}
	return monthTotals(rows), nil
}

func (r *DistributionRepository) CreateDistribution(ctx context.Context, record *model.DistributionRecord) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO distributions (id, fuel_station_id, fuel_amount, fuel_type, timestamp)
			VALUES (?, ?, ?, ?, ?)`,
			record.ID, record.StationID, record.FuelAmount, record.FuelType, record.Timestamp).Error
}

func (r *DistributionRepository) bucketTotals(ctx context.Context, unit string, from time.Time) ([]bucketRow, error) {
	var rows []bucketRow

	err := r.db.WithContext(ctx).
		Table("distributions").
		Select("DATE_TRUNC('"+unit+"', timestamp) AS bucket, COALESCE(SUM(fuel_amount), 0) AS total").
		Where("timestamp >= ?", from).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type bucketRow struct {
	Bucket time.Time
	Total  float64
}

func dayTotals(rows []bucketRow) map[model.DayKey]float64 {
	totals := make(map[model.DayKey]float64, len(rows))
	for _, row := range rows {
		totals[model.DayOf(row.Bucket)] += row.Total
	}
	return totals
}

func monthTotals(rows []bucketRow) map[model.MonthKey]float64 {
	totals := make(map[model.MonthKey]float64, len(rows))
	for _, row := range rows {
		totals[model.MonthOf(row.Bucket)] += row.Total
	}
	return totals
}
