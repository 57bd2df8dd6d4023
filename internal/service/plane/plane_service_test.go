package plane

import (
	"context"
	"testing"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func TestPlaneService_Create_Success(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	input := PlaneInput{
		Modelo:        "Boeing 737-800",
		AnoFabricacao: 2015,
		Capacidade:    186,
		ValorCompra:   decimal.RequireFromString("89500000.00"),
	}

	mockPlanes.On("Create", ctx, mock.AnythingOfType("*domain.Plane")).Return(nil).Once()

	plane, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, plane)
	assert.Equal(t, input.Modelo, plane.Modelo)
	assert.True(t, plane.ValorCompra.Equal(input.ValorCompra))

	mockPlanes.AssertExpectations(t)
}

// An unknown id yields (nil, nil); the handler decides what a missing plane
// means for the response.
func TestPlaneService_GetByID_UnknownID(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	mockPlanes.On("GetByID", ctx, int64(8)).Return(nil, nil).Once()

	plane, err := service.GetByID(ctx, 8)

	assert.NoError(t, err)
	assert.Nil(t, plane)

	mockPlanes.AssertExpectations(t)
}

func TestPlaneService_Update_NotFound(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	mockPlanes.On("GetByID", ctx, int64(3)).Return(nil, nil).Once()

	plane, err := service.Update(ctx, 3, PlaneInput{Modelo: "Airbus A320"})

	assert.Error(t, err)
	assert.Nil(t, plane)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Plane not found")

	mockPlanes.AssertNotCalled(t, "Update")
}

func TestPlaneService_Update_Success(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	existing := &domain.Plane{ID: 3, Modelo: "Airbus A319", Capacidade: 140, Status: domain.PlaneStatusOperante}
	mockPlanes.On("GetByID", ctx, int64(3)).Return(existing, nil).Once()
	mockPlanes.On("Update", ctx, mock.AnythingOfType("*domain.Plane")).Return(nil).Once()

	plane, err := service.Update(ctx, 3, PlaneInput{
		Modelo:        "Airbus A320neo",
		AnoFabricacao: 2021,
		Capacidade:    180,
		ValorCompra:   decimal.RequireFromString("110000000.00"),
	})

	assert.NoError(t, err)
	assert.NotNil(t, plane)
	assert.Equal(t, "Airbus A320neo", plane.Modelo)
	assert.Equal(t, 180, plane.Capacidade)
	assert.Equal(t, domain.PlaneStatusOperante, plane.Status)

	mockPlanes.AssertExpectations(t)
}

func TestPlaneService_Delete_Success(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	mockPlanes.On("GetByID", ctx, int64(4)).Return(&domain.Plane{ID: 4}, nil).Once()
	mockPlanes.On("Delete", ctx, int64(4)).Return(nil).Once()

	err := service.Delete(ctx, 4)

	assert.NoError(t, err)
	mockPlanes.AssertExpectations(t)
}

func TestPlaneService_Delete_NotFound(t *testing.T) {
	mockPlanes := &MockPlaneRepository{}
	service := NewPlaneService(mockPlanes)

	ctx := context.Background()
	mockPlanes.On("GetByID", ctx, int64(4)).Return(nil, nil).Once()

	err := service.Delete(ctx, 4)

	assert.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	mockPlanes.AssertNotCalled(t, "Delete")
}
