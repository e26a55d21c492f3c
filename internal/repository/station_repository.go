package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution-service/internal/model"
)

type StationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

func (r *StationRepository) ListStations(ctx context.Context) ([]model.Station, error) {
	var stations []model.Station

	err := r.db.WithContext(ctx).
		Table("fuel_stations").
		Select("id, name, address, phone_number, status, created_at").
		Order("created_at ASC").
		Scan(&stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *StationRepository) GetStation(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	var station model.Station

	err := r.db.WithContext(ctx).
		Table("fuel_stations").
		Select("id, name, address, phone_number, status, created_at").
		Where("id = ?", id).
		Take(&station).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *StationRepository) CreateStation(ctx context.Context, station *model.Station) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO fuel_stations (id, name, address, phone_number, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			station.ID, station.Name, station.Address, station.PhoneNumber, station.Status, station.CreatedAt).Error
}

// ActivateStation is a conditional write: only a PENDING station moves
// to ACTIVE. The store stays authoritative when callers race.
func (r *StationRepository) ActivateStation(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE fuel_stations SET status = ? WHERE id = ? AND status = ?",
			model.StationActive, id, model.StationPending)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RemoveStation moves any non-REMOVED station to REMOVED.
func (r *StationRepository) RemoveStation(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Exec("UPDATE fuel_stations SET status = ? WHERE id = ? AND status <> ?",
			model.StationRemoved, id, model.StationRemoved)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
