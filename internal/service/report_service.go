package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"distribution-service/internal/model"
)

// DistributionStore is the record-store contract for the distribution
// event stream.
type DistributionStore interface {
	ListDistributions(ctx context.Context) ([]model.DistributionRecord, error)
	ListDistributionsSince(ctx context.Context, since time.Time) ([]model.DistributionRecord, error)
	DistributedTotalsByDay(ctx context.Context, from time.Time) (map[model.DayKey]float64, error)
	DistributedTotalsByMonth(ctx context.Context, from time.Time) (map[model.MonthKey]float64, error)
	CreateDistribution(ctx context.Context, record *model.DistributionRecord) error
}

// PumpStore is the record-store contract for the pumping event stream.
type PumpStore interface {
	PumpedTotalsByDay(ctx context.Context, from time.Time) (map[model.DayKey]float64, error)
	PumpedTotalsByMonth(ctx context.Context, from time.Time) (map[model.MonthKey]float64, error)
	PumpedTodayByStation(ctx context.Context, dayStart time.Time) ([]model.StationPumped, error)
	CreatePumpTransaction(ctx context.Context, tx *model.PumpTransaction) error
}

type ReportService struct {
	stations      StationStore
	distributions DistributionStore
	pumps         PumpStore
	dailyWindow   int
	monthlyWindow int
}

func NewReportService(stations StationStore, distributions DistributionStore, pumps PumpStore, dailyWindow, monthlyWindow int) *ReportService {
	return &ReportService{
		stations:      stations,
		distributions: distributions,
		pumps:         pumps,
		dailyWindow:   dailyWindow,
		monthlyWindow: monthlyWindow,
	}
}

// Dashboard computes the scalar summary cards over today's snapshot.
func (s *ReportService) Dashboard(ctx context.Context, principal model.Principal) (*model.DashboardSummary, error) {
	now := time.Now()
	records, err := s.distributions.ListDistributionsSince(ctx, startOfDay(now))
	if err != nil {
		return nil, upstream("list today distributions", err)
	}
	summary := SummarizeToday(records, now)
	return &summary, nil
}

// DailySeries returns the gap-filled two-stream series for the most
// recent windowDays dates carrying distribution activity. A zero
// windowDays falls back to the configured default.
func (s *ReportService) DailySeries(ctx context.Context, principal model.Principal, windowDays int) ([]model.DailyPoint, error) {
	if windowDays <= 0 {
		windowDays = s.dailyWindow
	}
	from := startOfDay(time.Now()).AddDate(0, 0, -(windowDays - 1))

	distributed, err := s.distributions.DistributedTotalsByDay(ctx, from)
	if err != nil {
		return nil, upstream("distributed totals by day", err)
	}
	pumped, err := s.pumps.PumpedTotalsByDay(ctx, from)
	if err != nil {
		return nil, upstream("pumped totals by day", err)
	}

	return BuildDailySeries(distributed, pumped, windowDays), nil
}

// MonthlySeries returns the month-bucketed series over the last
// windowMonths calendar months, keyed on months with distribution
// activity.
func (s *ReportService) MonthlySeries(ctx context.Context, principal model.Principal, windowMonths int) ([]model.MonthlyPoint, error) {
	if windowMonths <= 0 {
		windowMonths = s.monthlyWindow
	}
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(windowMonths - 1), 0)

	distributed, err := s.distributions.DistributedTotalsByMonth(ctx, from)
	if err != nil {
		return nil, upstream("distributed totals by month", err)
	}
	pumped, err := s.pumps.PumpedTotalsByMonth(ctx, from)
	if err != nil {
		return nil, upstream("pumped totals by month", err)
	}

	return BuildMonthlySeries(distributed, pumped), nil
}

// PumpedToday returns the per-station pumped leaderboard for the
// current day. Every row must reference a known station; an unknown
// reference surfaces as ErrDataInconsistent rather than being dropped.
func (s *ReportService) PumpedToday(ctx context.Context, principal model.Principal) ([]model.StationPumped, error) {
	rows, err := s.pumps.PumpedTodayByStation(ctx, startOfDay(time.Now()))
	if err != nil {
		return nil, upstream("pumped today by station", err)
	}

	stations, err := s.stations.ListStations(ctx)
	if err != nil {
		return nil, upstream("list stations", err)
	}
	known := make(map[uuid.UUID]struct{}, len(stations))
	for _, st := range stations {
		known[st.ID] = struct{}{}
	}
	for _, row := range rows {
		if _, ok := known[row.StationID]; !ok {
			return nil, ErrDataInconsistent
		}
	}

	return rows, nil
}

// History serves one page of the filtered ledger. Composition order is
// fixed: filter, then sort, then paginate. The requested page is
// clamped into the valid range before slicing.
func (s *ReportService) History(ctx context.Context, principal model.Principal, filter model.HistoryFilter, page, pageSize int) (*model.HistoryPage, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidInput
	}

	records, err := s.distributions.ListDistributions(ctx)
	if err != nil {
		return nil, upstream("list distributions", err)
	}

	filtered := FilterDistributions(records, filter, time.Now())
	sorted := SortDistributions(filtered)

	totalPages := (len(sorted) + pageSize - 1) / pageSize
	result := PaginateDistributions(sorted, ClampPage(page, totalPages), pageSize)
	return &result, nil
}

// RecordDistribution writes one immutable delivery event against an
// active station.
func (s *ReportService) RecordDistribution(ctx context.Context, principal model.Principal, stationID uuid.UUID, amount float64, fuelType model.FuelType, at time.Time) (*model.DistributionRecord, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if amount < 0 {
		return nil, ErrInvalidInput
	}

	station, err := s.stations.GetStation(ctx, stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream("get station", err)
	}
	if station.Status != model.StationActive {
		return nil, ErrStationNotActive
	}

	if at.IsZero() {
		at = time.Now()
	}
	record := &model.DistributionRecord{
		ID:          uuid.New(),
		StationID:   station.ID,
		StationName: station.Name,
		FuelAmount:  amount,
		FuelType:    fuelType,
		Timestamp:   at,
	}
	if err := s.distributions.CreateDistribution(ctx, record); err != nil {
		return nil, upstream("create distribution", err)
	}
	return record, nil
}

// RecordPumped writes one pumping event for an active station.
func (s *ReportService) RecordPumped(ctx context.Context, principal model.Principal, stationID uuid.UUID, amount float64, at time.Time) (*model.PumpTransaction, error) {
	if !principal.IsAdmin() && !principal.IsOperator() {
		return nil, ErrPermissionDenied
	}
	if amount < 0 {
		return nil, ErrInvalidInput
	}

	station, err := s.stations.GetStation(ctx, stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream("get station", err)
	}
	if station.Status != model.StationActive {
		return nil, ErrStationNotActive
	}

	if at.IsZero() {
		at = time.Now()
	}
	tx := &model.PumpTransaction{
		ID:           uuid.New(),
		StationID:    station.ID,
		PumpedAmount: amount,
		RecordedAt:   at,
	}
	if err := s.pumps.CreatePumpTransaction(ctx, tx); err != nil {
		return nil, upstream("create pump transaction", err)
	}
	return tx, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
