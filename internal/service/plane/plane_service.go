package plane

import (
	"context"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
	"github.com/shopspring/decimal"
)

type PlaneUseCase interface {
	Create(ctx context.Context, input PlaneInput) (*domain.Plane, error)
	List(ctx context.Context) ([]domain.Plane, error)
	GetByID(ctx context.Context, id int64) (*domain.Plane, error)
	Update(ctx context.Context, id int64, input PlaneInput) (*domain.Plane, error)
	Delete(ctx context.Context, id int64) error
}

type PlaneService struct {
	planes repository.PlaneRepository
}

type PlaneInput struct {
	Modelo        string
	AnoFabricacao int
	Capacidade    int
	ValorCompra   decimal.Decimal
	CreatedAt     time.Time // optional; zero means "let the store stamp it"
}

func NewPlaneService(planes repository.PlaneRepository) *PlaneService {
	return &PlaneService{planes: planes}
}

func (s *PlaneService) Create(ctx context.Context, input PlaneInput) (*domain.Plane, error) {
	plane := &domain.Plane{
		Modelo:        input.Modelo,
		AnoFabricacao: input.AnoFabricacao,
		Capacidade:    input.Capacidade,
		ValorCompra:   input.ValorCompra,
		CreatedAt:     input.CreatedAt,
	}
	if err := s.planes.Create(ctx, plane); err != nil {
		return nil, err
	}
	return plane, nil
}

func (s *PlaneService) List(ctx context.Context) ([]domain.Plane, error) {
	return s.planes.List(ctx)
}

// GetByID returns (nil, nil) for an unknown id; the handler turns that into
// a 404 rather than this service raising.
func (s *PlaneService) GetByID(ctx context.Context, id int64) (*domain.Plane, error) {
	return s.planes.GetByID(ctx, id)
}

func (s *PlaneService) Update(ctx context.Context, id int64, input PlaneInput) (*domain.Plane, error) {
	plane, err := s.planes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plane == nil {
		return nil, domain.NewNotFound("Plane not found")
	}

	plane.Modelo = input.Modelo
	plane.AnoFabricacao = input.AnoFabricacao
	plane.Capacidade = input.Capacidade
	plane.ValorCompra = input.ValorCompra
	if err := s.planes.Update(ctx, plane); err != nil {
		return nil, err
	}
	return plane, nil
}

// Delete removes the plane; the schema cascades to its cash flows, detaches
// passengers and drops airport links.
func (s *PlaneService) Delete(ctx context.Context, id int64) error {
	plane, err := s.planes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if plane == nil {
		return domain.NewNotFound("Plane not found")
	}
	return s.planes.Delete(ctx, id)
}

var _ PlaneUseCase = (*PlaneService)(nil)
