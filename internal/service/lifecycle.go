package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution-service/internal/model"
)

// StationStore is the record-store contract for station lifecycle data.
type StationStore interface {
	ListStations(ctx context.Context) ([]model.Station, error)
	GetStation(ctx context.Context, id uuid.UUID) (*model.Station, error)
	CreateStation(ctx context.Context, station *model.Station) error
	// ActivateStation flips PENDING to ACTIVE and reports whether a row
	// changed; the store is the authority under concurrent mutation.
	ActivateStation(ctx context.Context, id uuid.UUID) (bool, error)
	// RemoveStation flips any non-REMOVED status to REMOVED.
	RemoveStation(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClassifyStations partitions by lifecycle status. Removed stations are
// logically gone and excluded from both groups.
func ClassifyStations(stations []model.Station) (pending, active []model.Station) {
	pending = make([]model.Station, 0, len(stations))
	active = make([]model.Station, 0, len(stations))
	for _, st := range stations {
		switch st.Status {
		case model.StationPending:
			pending = append(pending, st)
		case model.StationActive:
			active = append(active, st)
		}
	}
	return pending, active
}

// ComputeStationStats is a pure aggregation over a station snapshot.
// Total counts every station including removed ones; only the pending
// and active counts are reported separately.
func ComputeStationStats(stations []model.Station) model.StationStats {
	stats := model.StationStats{Total: len(stations)}
	for _, st := range stations {
		switch st.Status {
		case model.StationPending:
			stats.Pending++
		case model.StationActive:
			stats.Active++
		}
	}
	return stats
}

type StationService struct {
	stations StationStore
}

func NewStationService(stations StationStore) *StationService {
	return &StationService{stations: stations}
}

// Board returns the lifecycle listing plus its stats, computed over a
// single station snapshot.
func (s *StationService) Board(ctx context.Context, principal model.Principal) (*model.StationBoard, error) {
	stations, err := s.stations.ListStations(ctx)
	if err != nil {
		return nil, upstream("list stations", err)
	}

	pending, active := ClassifyStations(stations)
	return &model.StationBoard{
		Pending: pending,
		Active:  active,
		Stats:   ComputeStationStats(stations),
	}, nil
}

// Register creates a new station in PENDING status.
func (s *StationService) Register(ctx context.Context, principal model.Principal, name, address, phone string) (*model.Station, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	station := &model.Station{
		ID:          uuid.New(),
		Name:        name,
		Address:     strings.TrimSpace(address),
		PhoneNumber: strings.TrimSpace(phone),
		Status:      model.StationPending,
		CreatedAt:   time.Now(),
	}
	if err := s.stations.CreateStation(ctx, station); err != nil {
		return nil, upstream("create station", err)
	}
	return station, nil
}

// Approve transitions PENDING to ACTIVE. A station already ACTIVE or
// REMOVED yields ErrAlreadyTerminal so callers can tell a retried no-op
// from a logic error. No retry and no caching happen here; callers
// re-query after a successful mutation.
func (s *StationService) Approve(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	updated, err := s.stations.ActivateStation(ctx, id)
	if err != nil {
		return upstream("activate station", err)
	}
	if updated {
		return nil
	}

	// No row changed: either the station does not exist or another
	// caller won the race to a terminal state.
	station, err := s.stations.GetStation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return upstream("get station", err)
	}
	if station.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	return upstream("activate station", errors.New("no rows updated"))
}

// Reject transitions any non-REMOVED station to REMOVED. Rejection is
// permanent; attempts against an already removed station yield
// ErrAlreadyTerminal.
func (s *StationService) Reject(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	updated, err := s.stations.RemoveStation(ctx, id)
	if err != nil {
		return upstream("remove station", err)
	}
	if updated {
		return nil
	}

	station, err := s.stations.GetStation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return upstream("get station", err)
	}
	if station.Status == model.StationRemoved {
		return ErrAlreadyTerminal
	}
	return upstream("remove station", errors.New("no rows updated"))
}
