package employee

import (
	"context"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
)

type EmployeeUseCase interface {
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role domain.EmployeeRole) ([]domain.Employee, error)
}

type EmployeeService struct {
	employees repository.EmployeeRepository
}

type EmployeeInput struct {
	Nome         string
	Matricula    string
	Funcao       domain.EmployeeRole
	ContratadoEm time.Time // optional on create (zero lets the store stamp it); full-replaced on update
}

func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Nome:         input.Nome,
		Matricula:    input.Matricula,
		Funcao:       input.Funcao,
		ContratadoEm: input.ContratadoEm,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// GetByID returns (nil, nil) for an unknown id; the handler decides whether
// that is a 404.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFound("Employee not found")
	}

	employee.Nome = input.Nome
	employee.Matricula = input.Matricula
	employee.Funcao = input.Funcao
	employee.ContratadoEm = input.ContratadoEm
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.NewNotFound("Employee not found")
	}
	return s.employees.Delete(ctx, id)
}

// ListByRole returns an empty list when no employee holds the role; that is
// a valid result, not an error.
func (s *EmployeeService) ListByRole(ctx context.Context, role domain.EmployeeRole) ([]domain.Employee, error) {
	return s.employees.ListByRole(ctx, role)
}

var _ EmployeeUseCase = (*EmployeeService)(nil)
