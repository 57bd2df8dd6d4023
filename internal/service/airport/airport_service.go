package airport

import (
	"context"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
)

type AirportUseCase interface {
	Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error)
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	GetByCodigoIATA(ctx context.Context, codigo string) (*domain.Airport, error)
	Update(ctx context.Context, id int64, input CreateAirportInput) (*domain.Airport, error)
	Delete(ctx context.Context, id int64) error
	GetDetails(ctx context.Context, id int64) (*domain.AirportDetails, error)
	AddPlane(ctx context.Context, airportID, planeID int64) error
	RemovePlane(ctx context.Context, airportID, planeID int64) error
}

type AirportService struct {
	airports  repository.AirportRepository
	planes    repository.PlaneRepository
	cashFlows repository.CashFlowRepository
}

type CreateAirportInput struct {
	Nome       string
	Cidade     string
	Estado     string
	CodigoIATA string
	CriadoEm   time.Time
}

func NewAirportService(airports repository.AirportRepository, planes repository.PlaneRepository, cashFlows repository.CashFlowRepository) *AirportService {
	return &AirportService{airports: airports, planes: planes, cashFlows: cashFlows}
}

// Create inserts without re-checking the IATA code: the handler performs the
// duplicate check before calling here.
func (s *AirportService) Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error) {
	airport := &domain.Airport{
		Nome:       input.Nome,
		Cidade:     input.Cidade,
		Estado:     input.Estado,
		CodigoIATA: input.CodigoIATA,
		CriadoEm:   input.CriadoEm,
	}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, domain.NewNotFound("Airport not found")
	}
	return airport, nil
}

func (s *AirportService) GetByCodigoIATA(ctx context.Context, codigo string) (*domain.Airport, error) {
	return s.airports.GetByCodigoIATA(ctx, codigo)
}

// Update refuses any IATA code already present, even the airport's own
// current one. Resubmitting an unchanged code is a conflict.
func (s *AirportService) Update(ctx context.Context, id int64, input CreateAirportInput) (*domain.Airport, error) {
	existing, err := s.airports.GetByCodigoIATA(ctx, input.CodigoIATA)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict("Aeroporto já existe com esse código IATA")
	}

	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, domain.NewNotFound("Airport not found")
	}

	airport.Nome = input.Nome
	airport.Cidade = input.Cidade
	airport.Estado = input.Estado
	airport.CodigoIATA = input.CodigoIATA
	airport.CriadoEm = input.CriadoEm
	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

// Delete removes the airport; the schema cascades to its cash flows and
// plane links.
func (s *AirportService) Delete(ctx context.Context, id int64) error {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if airport == nil {
		return domain.NewNotFound("Airport not found")
	}
	return s.airports.Delete(ctx, id)
}

func (s *AirportService) GetDetails(ctx context.Context, id int64) (*domain.AirportDetails, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, domain.NewNotFound("Airport not found")
	}

	planes, err := s.airports.ListPlanes(ctx, id)
	if err != nil {
		return nil, err
	}
	cashFlows, err := s.cashFlows.ListByAirport(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.AirportDetails{Airport: *airport, Planes: planes, CashFlows: cashFlows}, nil
}

func (s *AirportService) AddPlane(ctx context.Context, airportID, planeID int64) error {
	if err := s.resolveLink(ctx, airportID, planeID); err != nil {
		return err
	}
	return s.airports.AddPlane(ctx, airportID, planeID)
}

func (s *AirportService) RemovePlane(ctx context.Context, airportID, planeID int64) error {
	if err := s.resolveLink(ctx, airportID, planeID); err != nil {
		return err
	}
	return s.airports.RemovePlane(ctx, airportID, planeID)
}

func (s *AirportService) resolveLink(ctx context.Context, airportID, planeID int64) error {
	airport, err := s.airports.GetByID(ctx, airportID)
	if err != nil {
		return err
	}
	if airport == nil {
		return domain.NewInvalidReference("Airport not found")
	}
	plane, err := s.planes.GetByID(ctx, planeID)
	if err != nil {
		return err
	}
	if plane == nil {
		return domain.NewInvalidReference("Plane not found")
	}
	return nil
}

var _ AirportUseCase = (*AirportService)(nil)
