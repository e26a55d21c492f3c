package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"distribution-service/internal/model"
)

type stubStationStore struct {
	stations map[uuid.UUID]*model.Station
	listErr  error
}

func newStubStationStore(stations ...*model.Station) *stubStationStore {
	store := &stubStationStore{stations: make(map[uuid.UUID]*model.Station)}
	for _, st := range stations {
		store.stations[st.ID] = st
	}
	return store
}

func (s *stubStationStore) ListStations(ctx context.Context) ([]model.Station, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	result := make([]model.Station, 0, len(s.stations))
	for _, st := range s.stations {
		result = append(result, *st)
	}
	return result, nil
}

func (s *stubStationStore) GetStation(ctx context.Context, id uuid.UUID) (*model.Station, error) {
	st, ok := s.stations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *st
	return &copied, nil
}

func (s *stubStationStore) CreateStation(ctx context.Context, station *model.Station) error {
	copied := *station
	s.stations[station.ID] = &copied
	return nil
}

func (s *stubStationStore) ActivateStation(ctx context.Context, id uuid.UUID) (bool, error) {
	st, ok := s.stations[id]
	if !ok || st.Status != model.StationPending {
		return false, nil
	}
	st.Status = model.StationActive
	return true, nil
}

func (s *stubStationStore) RemoveStation(ctx context.Context, id uuid.UUID) (bool, error) {
	st, ok := s.stations[id]
	if !ok || st.Status == model.StationRemoved {
		return false, nil
	}
	st.Status = model.StationRemoved
	return true, nil
}

func station(status model.StationStatus) *model.Station {
	return &model.Station{ID: uuid.New(), Name: "Test Station", Status: status}
}

func admin() model.Principal {
	return model.Principal{UserID: uuid.New(), Username: "admin", Role: model.RoleAdmin}
}

func TestClassifyStations_PartitionIsDisjointAndComplete(t *testing.T) {
	stations := []model.Station{
		*station(model.StationPending),
		*station(model.StationPending),
		*station(model.StationActive),
		*station(model.StationRemoved),
	}

	pending, active := ClassifyStations(stations)

	assert.Len(t, pending, 2)
	assert.Len(t, active, 1)

	seen := make(map[uuid.UUID]int)
	for _, st := range pending {
		seen[st.ID]++
		assert.Equal(t, model.StationPending, st.Status)
	}
	for _, st := range active {
		seen[st.ID]++
		assert.Equal(t, model.StationActive, st.Status)
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "station %s appears in more than one group", id)
	}

	removed := len(stations) - len(pending) - len(active)
	assert.Equal(t, 1, removed)
}

func TestComputeStationStats_Idempotent(t *testing.T) {
	stations := []model.Station{
		*station(model.StationPending),
		*station(model.StationActive),
		*station(model.StationActive),
		*station(model.StationRemoved),
	}

	first := ComputeStationStats(stations)
	second := ComputeStationStats(stations)

	assert.Equal(t, first, second)
	assert.Equal(t, model.StationStats{Total: 4, Pending: 1, Active: 2}, first)
}

func TestApprove_PendingBecomesActive(t *testing.T) {
	st := station(model.StationPending)
	svc := NewStationService(newStubStationStore(st))

	err := svc.Approve(context.Background(), admin(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StationActive, st.Status)
}

func TestApprove_TwiceReportsAlreadyTerminal(t *testing.T) {
	st := station(model.StationPending)
	svc := NewStationService(newStubStationStore(st))

	require.NoError(t, svc.Approve(context.Background(), admin(), st.ID))

	err := svc.Approve(context.Background(), admin(), st.ID)
	assert.ErrorIs(t, err, ErrAlreadyTerminal)
	assert.Equal(t, model.StationActive, st.Status)
}

func TestApprove_UnknownStation(t *testing.T) {
	svc := NewStationService(newStubStationStore())

	err := svc.Approve(context.Background(), admin(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReject_IsPermanent(t *testing.T) {
	st := station(model.StationActive)
	svc := NewStationService(newStubStationStore(st))

	require.NoError(t, svc.Reject(context.Background(), admin(), st.ID))
	assert.Equal(t, model.StationRemoved, st.Status)

	assert.ErrorIs(t, svc.Reject(context.Background(), admin(), st.ID), ErrAlreadyTerminal)
	assert.ErrorIs(t, svc.Approve(context.Background(), admin(), st.ID), ErrAlreadyTerminal)
	assert.Equal(t, model.StationRemoved, st.Status)
}

func TestReject_PendingStation(t *testing.T) {
	st := station(model.StationPending)
	svc := NewStationService(newStubStationStore(st))

	require.NoError(t, svc.Reject(context.Background(), admin(), st.ID))
	assert.Equal(t, model.StationRemoved, st.Status)
}

func TestLifecycleMutations_RequireAdmin(t *testing.T) {
	st := station(model.StationPending)
	svc := NewStationService(newStubStationStore(st))
	operator := model.Principal{UserID: uuid.New(), Role: model.RoleOperator}

	assert.ErrorIs(t, svc.Approve(context.Background(), operator, st.ID), ErrPermissionDenied)
	assert.ErrorIs(t, svc.Reject(context.Background(), operator, st.ID), ErrPermissionDenied)
	assert.Equal(t, model.StationPending, st.Status)
}

func TestBoard_ExcludesRemoved(t *testing.T) {
	pending := station(model.StationPending)
	active := station(model.StationActive)
	removed := station(model.StationRemoved)
	svc := NewStationService(newStubStationStore(pending, active, removed))

	board, err := svc.Board(context.Background(), admin())
	require.NoError(t, err)

	assert.Len(t, board.Pending, 1)
	assert.Len(t, board.Active, 1)
	assert.Equal(t, model.StationStats{Total: 3, Pending: 1, Active: 1}, board.Stats)
}

func TestBoard_UpstreamFailureIsSurfaced(t *testing.T) {
	store := newStubStationStore()
	store.listErr = assert.AnError
	svc := NewStationService(store)

	_, err := svc.Board(context.Background(), admin())
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestRegister_CreatesPendingStation(t *testing.T) {
	store := newStubStationStore()
	svc := NewStationService(store)

	created, err := svc.Register(context.Background(), admin(), "  North Depot ", "1 Depot Rd", "+1-555-0100")
	require.NoError(t, err)

	assert.Equal(t, "North Depot", created.Name)
	assert.Equal(t, model.StationPending, created.Status)
	require.Contains(t, store.stations, created.ID)
}

func TestRegister_RejectsEmptyName(t *testing.T) {
	svc := NewStationService(newStubStationStore())

	_, err := svc.Register(context.Background(), admin(), "   ", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
