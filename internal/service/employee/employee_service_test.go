package employee

import (
	"context"
	"testing"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ListByRole(ctx context.Context, role domain.EmployeeRole) ([]domain.Employee, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func TestEmployeeService_Create_Success(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	input := EmployeeInput{Nome: "Carla Mendes", Matricula: "EMP-0042", Funcao: domain.EmployeeRolePiloto}

	mockEmployees.On("Create", ctx, mock.AnythingOfType("*domain.Employee")).Return(nil).Once()

	employee, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, employee)
	assert.Equal(t, input.Matricula, employee.Matricula)
	assert.Equal(t, domain.EmployeeRolePiloto, employee.Funcao)

	mockEmployees.AssertExpectations(t)
}

func TestEmployeeService_GetByID_UnknownID(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	mockEmployees.On("GetByID", ctx, int64(12)).Return(nil, nil).Once()

	employee, err := service.GetByID(ctx, 12)

	assert.NoError(t, err)
	assert.Nil(t, employee)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	mockEmployees.On("GetByID", ctx, int64(12)).Return(nil, nil).Once()

	employee, err := service.Update(ctx, 12, EmployeeInput{Nome: "João", Matricula: "EMP-0001", Funcao: domain.EmployeeRoleTecnico})

	assert.Error(t, err)
	assert.Nil(t, employee)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "Employee not found")

	mockEmployees.AssertNotCalled(t, "Update")
}

func TestEmployeeService_Update_Success(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	existing := &domain.Employee{ID: 2, Nome: "Ana", Matricula: "EMP-0002", Funcao: domain.EmployeeRoleComissario}
	mockEmployees.On("GetByID", ctx, int64(2)).Return(existing, nil).Once()
	mockEmployees.On("Update", ctx, mock.AnythingOfType("*domain.Employee")).Return(nil).Once()

	employee, err := service.Update(ctx, 2, EmployeeInput{Nome: "Ana Paula", Matricula: "EMP-0002", Funcao: domain.EmployeeRoleAtendente})

	assert.NoError(t, err)
	assert.NotNil(t, employee)
	assert.Equal(t, "Ana Paula", employee.Nome)
	assert.Equal(t, domain.EmployeeRoleAtendente, employee.Funcao)

	mockEmployees.AssertExpectations(t)
}

// contratadoEm is full-replaced on update, not preserved from the stored row.
func TestEmployeeService_Update_ReplacesContratadoEm(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	hired := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	restamped := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	existing := &domain.Employee{ID: 2, Nome: "Ana", Matricula: "EMP-0002", Funcao: domain.EmployeeRoleComissario, ContratadoEm: hired}
	mockEmployees.On("GetByID", ctx, int64(2)).Return(existing, nil).Once()
	mockEmployees.On("Update", ctx, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.ContratadoEm.Equal(restamped)
	})).Return(nil).Once()

	employee, err := service.Update(ctx, 2, EmployeeInput{Nome: "Ana", Matricula: "EMP-0002", Funcao: domain.EmployeeRoleComissario, ContratadoEm: restamped})

	assert.NoError(t, err)
	assert.True(t, employee.ContratadoEm.Equal(restamped))

	mockEmployees.AssertExpectations(t)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	mockEmployees.On("GetByID", ctx, int64(9)).Return(nil, nil).Once()

	err := service.Delete(ctx, 9)

	assert.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	mockEmployees.AssertNotCalled(t, "Delete")
}

// No employee with the role is an empty list, not an error.
func TestEmployeeService_ListByRole_Empty(t *testing.T) {
	mockEmployees := &MockEmployeeRepository{}
	service := NewEmployeeService(mockEmployees)

	ctx := context.Background()
	mockEmployees.On("ListByRole", ctx, domain.EmployeeRoleTecnico).Return([]domain.Employee{}, nil).Once()

	employees, err := service.ListByRole(ctx, domain.EmployeeRoleTecnico)

	assert.NoError(t, err)
	assert.Empty(t, employees)
}
