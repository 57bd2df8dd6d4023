package passenger

import (
	"context"
	"testing"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPassengerService_Create_Success(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	doc := "12345678900"
	email := "marcos@example.com"
	input := PassengerInput{Nome: "Marcos Lima", DocumentoIdentidade: &doc, Email: &email}

	mockPassengers.On("Create", ctx, mock.AnythingOfType("*domain.Passenger")).Return(nil).Once()

	passenger, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, passenger)
	assert.Equal(t, input.Nome, passenger.Nome)
	assert.Equal(t, &doc, passenger.DocumentoIdentidade)

	mockPassengers.AssertExpectations(t)
}

func TestPassengerService_Create_WithoutOptionalFields(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	mockPassengers.On("Create", ctx, mock.AnythingOfType("*domain.Passenger")).Return(nil).Once()

	passenger, err := service.Create(ctx, PassengerInput{Nome: "Sem Documento"})

	assert.NoError(t, err)
	assert.NotNil(t, passenger)
	assert.Nil(t, passenger.DocumentoIdentidade)
	assert.Nil(t, passenger.Email)
	assert.Nil(t, passenger.PlaneID)
}

func TestPassengerService_GetByID_NotFound(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	mockPassengers.On("GetByID", ctx, int64(31)).Return(nil, nil).Once()

	passenger, err := service.GetByID(ctx, 31)

	assert.Error(t, err)
	assert.Nil(t, passenger)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Passageiro não encontrado")
}

func TestPassengerService_Update_NotFound(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	mockPassengers.On("GetByID", ctx, int64(31)).Return(nil, nil).Once()

	passenger, err := service.Update(ctx, 31, PassengerInput{Nome: "Novo Nome"})

	assert.Error(t, err)
	assert.Nil(t, passenger)
	assert.True(t, domain.IsNotFound(err))

	mockPassengers.AssertNotCalled(t, "Update")
}

func TestPassengerService_Update_Success(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	planeID := int64(4)
	existing := &domain.Passenger{ID: 6, Nome: "Antigo"}
	mockPassengers.On("GetByID", ctx, int64(6)).Return(existing, nil).Once()
	mockPassengers.On("Update", ctx, mock.AnythingOfType("*domain.Passenger")).Return(nil).Once()

	passenger, err := service.Update(ctx, 6, PassengerInput{Nome: "Atualizado", PlaneID: &planeID})

	assert.NoError(t, err)
	assert.NotNil(t, passenger)
	assert.Equal(t, "Atualizado", passenger.Nome)
	assert.Equal(t, &planeID, passenger.PlaneID)

	mockPassengers.AssertExpectations(t)
}

func TestPassengerService_Delete_Success(t *testing.T) {
	mockPassengers := &MockPassengerRepository{}
	service := NewPassengerService(mockPassengers)

	ctx := context.Background()
	mockPassengers.On("GetByID", ctx, int64(6)).Return(&domain.Passenger{ID: 6}, nil).Once()
	mockPassengers.On("Delete", ctx, int64(6)).Return(nil).Once()

	err := service.Delete(ctx, 6)

	assert.NoError(t, err)
	mockPassengers.AssertExpectations(t)
}
