package flight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) ListByOrigem(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, airportID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListByPlane(ctx context.Context, planeID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, planeID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByCodigoIATA(ctx context.Context, codigo string) (*domain.Airport, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAirportRepository) ListPlanes(ctx context.Context, airportID int64) ([]domain.Plane, error) {
	args := m.Called(ctx, airportID)
	return args.Get(0).([]domain.Plane), args.Error(1)
}

func (m *MockAirportRepository) AddPlane(ctx context.Context, airportID, planeID int64) error {
	args := m.Called(ctx, airportID, planeID)
	return args.Error(0)
}

func (m *MockAirportRepository) RemovePlane(ctx context.Context, airportID, planeID int64) error {
	args := m.Called(ctx, airportID, planeID)
	return args.Error(0)
}

type MockPlaneRepository struct {
	mock.Mock
}

func (m *MockPlaneRepository) Create(ctx context.Context, p *domain.Plane) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaneRepository) List(ctx context.Context) ([]domain.Plane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Plane), args.Error(1)
}

func (m *MockPlaneRepository) GetByID(ctx context.Context, id int64) (*domain.Plane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plane), args.Error(1)
}

func (m *MockPlaneRepository) Update(ctx context.Context, p *domain.Plane) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestService() (*FlightService, *MockFlightRepository, *MockAirportRepository, *MockPlaneRepository, *MockCache) {
	mockFlights := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	mockPlanes := &MockPlaneRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockFlights, mockAirports, mockPlanes, mockCache)
	return service, mockFlights, mockAirports, mockPlanes, mockCache
}

func TestFlightService_List_CacheHit(t *testing.T) {
	service, mockFlights, _, _, mockCache := newTestService()

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, Status: domain.FlightStatusProgramado}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)

	mockCache.AssertExpectations(t)
	mockFlights.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	service, mockFlights, _, _, mockCache := newTestService()

	ctx := context.Background()
	stored := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockFlights.On("List", ctx).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)

	mockCache.AssertExpectations(t)
	mockFlights.AssertExpectations(t)
}

// A failing cache must not fail the request.
func TestFlightService_List_CacheError(t *testing.T) {
	service, mockFlights, _, _, mockCache := newTestService()

	ctx := context.Background()
	stored := []domain.Flight{{ID: 3}}
	mockCache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	mockFlights.On("List", ctx).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(errors.New("redis down")).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)

	mockFlights.AssertExpectations(t)
}

func TestFlightService_List_NoCache(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewFlightService(mockFlights, &MockAirportRepository{}, &MockPlaneRepository{}, nil)

	ctx := context.Background()
	stored := []domain.Flight{{ID: 4}}
	mockFlights.On("List", ctx).Return(stored, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)

	mockFlights.AssertExpectations(t)
}

func TestFlightService_Create_InvalidReference(t *testing.T) {
	service, mockFlights, mockAirports, mockPlanes, _ := newTestService()

	ctx := context.Background()
	input := FlightInput{OrigemID: 1, DestinoID: 2, PlaneID: 9}
	mockAirports.On("GetByID", ctx, int64(1)).Return(&domain.Airport{ID: 1}, nil).Once()
	mockAirports.On("GetByID", ctx, int64(2)).Return(&domain.Airport{ID: 2}, nil).Once()
	mockPlanes.On("GetByID", ctx, int64(9)).Return(nil, nil).Once()

	flight, err := service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, flight)
	assert.True(t, domain.IsInvalidReference(err))
	assert.Contains(t, err.Error(), "Origem, destino ou avião inválido")

	mockFlights.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_Success(t *testing.T) {
	service, mockFlights, mockAirports, mockPlanes, mockCache := newTestService()

	ctx := context.Background()
	partida := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	input := FlightInput{
		OrigemID:        1,
		DestinoID:       2,
		DataHoraPartida: partida,
		DataHoraChegada: partida.Add(2 * time.Hour),
		PlaneID:         9,
	}

	mockAirports.On("GetByID", ctx, int64(1)).Return(&domain.Airport{ID: 1}, nil).Once()
	mockAirports.On("GetByID", ctx, int64(2)).Return(&domain.Airport{ID: 2}, nil).Once()
	mockPlanes.On("GetByID", ctx, int64(9)).Return(&domain.Plane{ID: 9}, nil).Once()
	mockFlights.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Flight).ID = 50
	}).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	created := &domain.Flight{ID: 50, OrigemID: 1, DestinoID: 2, PlaneID: 9, Status: domain.FlightStatusProgramado}
	mockFlights.On("GetByID", ctx, int64(50)).Return(created, nil).Once()

	flight, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, flight)
	assert.Equal(t, int64(50), flight.ID)
	assert.Equal(t, domain.FlightStatusProgramado, flight.Status)

	mockFlights.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// An omitted status on update keeps the stored one; it must never overwrite
// the column with the empty string.
func TestFlightService_Update_OmittedStatusKeepsStored(t *testing.T) {
	service, mockFlights, mockAirports, mockPlanes, mockCache := newTestService()

	ctx := context.Background()
	existing := &domain.Flight{ID: 50, OrigemID: 1, DestinoID: 2, PlaneID: 9, Status: domain.FlightStatusEmAndamento}
	mockFlights.On("GetByID", ctx, int64(50)).Return(existing, nil).Twice()
	mockAirports.On("GetByID", ctx, int64(1)).Return(&domain.Airport{ID: 1}, nil).Once()
	mockAirports.On("GetByID", ctx, int64(2)).Return(&domain.Airport{ID: 2}, nil).Once()
	mockPlanes.On("GetByID", ctx, int64(9)).Return(&domain.Plane{ID: 9}, nil).Once()
	mockFlights.On("Update", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.Status == domain.FlightStatusEmAndamento
	})).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	flight, err := service.Update(ctx, 50, FlightInput{OrigemID: 1, DestinoID: 2, PlaneID: 9})

	assert.NoError(t, err)
	assert.NotNil(t, flight)
	assert.Equal(t, domain.FlightStatusEmAndamento, flight.Status)

	mockFlights.AssertExpectations(t)
}

func TestFlightService_Update_ReplacesStatus(t *testing.T) {
	service, mockFlights, mockAirports, mockPlanes, mockCache := newTestService()

	ctx := context.Background()
	existing := &domain.Flight{ID: 50, OrigemID: 1, DestinoID: 2, PlaneID: 9, Status: domain.FlightStatusProgramado}
	mockFlights.On("GetByID", ctx, int64(50)).Return(existing, nil).Twice()
	mockAirports.On("GetByID", ctx, int64(1)).Return(&domain.Airport{ID: 1}, nil).Once()
	mockAirports.On("GetByID", ctx, int64(2)).Return(&domain.Airport{ID: 2}, nil).Once()
	mockPlanes.On("GetByID", ctx, int64(9)).Return(&domain.Plane{ID: 9}, nil).Once()
	mockFlights.On("Update", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.Status == domain.FlightStatusCancelado
	})).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	flight, err := service.Update(ctx, 50, FlightInput{OrigemID: 1, DestinoID: 2, PlaneID: 9, Status: domain.FlightStatusCancelado})

	assert.NoError(t, err)
	assert.Equal(t, domain.FlightStatusCancelado, flight.Status)

	mockFlights.AssertExpectations(t)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	service, mockFlights, _, _, _ := newTestService()

	ctx := context.Background()
	mockFlights.On("GetByID", ctx, int64(7)).Return(nil, nil).Once()

	flight, err := service.GetByID(ctx, 7)

	assert.Error(t, err)
	assert.Nil(t, flight)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Voo não encontrado")
}

func TestFlightService_Delete_InvalidatesCache(t *testing.T) {
	service, mockFlights, _, _, mockCache := newTestService()

	ctx := context.Background()
	mockFlights.On("GetByID", ctx, int64(5)).Return(&domain.Flight{ID: 5}, nil).Once()
	mockFlights.On("Delete", ctx, int64(5)).Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	err := service.Delete(ctx, 5)

	assert.NoError(t, err)
	mockFlights.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// No flight departing from the airport is reported as a failure, not an
// empty list.
func TestFlightService_ListByAirport_Empty(t *testing.T) {
	service, mockFlights, _, _, _ := newTestService()

	ctx := context.Background()
	mockFlights.On("ListByOrigem", ctx, int64(3)).Return([]domain.Flight{}, nil).Once()

	flights, err := service.ListByAirport(ctx, 3)

	assert.Error(t, err)
	assert.Nil(t, flights)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Nenhum voo encontrado para este aeroporto")
}

func TestFlightService_ListByPlane_Empty(t *testing.T) {
	service, mockFlights, _, _, _ := newTestService()

	ctx := context.Background()
	mockFlights.On("ListByPlane", ctx, int64(9)).Return([]domain.Flight{}, nil).Once()

	flights, err := service.ListByPlane(ctx, 9)

	assert.Error(t, err)
	assert.Nil(t, flights)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Nenhum voo encontrado para este avião")
}

func TestFlightService_ListByPlane_Found(t *testing.T) {
	service, mockFlights, _, _, _ := newTestService()

	ctx := context.Background()
	stored := []domain.Flight{{ID: 1, PlaneID: 9}}
	mockFlights.On("ListByPlane", ctx, int64(9)).Return(stored, nil).Once()

	flights, err := service.ListByPlane(ctx, 9)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
}
