package flight

import (
	"context"
	"time"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
)

type FlightUseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	ListByAirport(ctx context.Context, airportID int64) ([]domain.Flight, error)
	ListByPlane(ctx context.Context, planeID int64) ([]domain.Flight, error)
}

// FlightCache is a best-effort list cache; every error from it is ignored
// and the repository remains the source of truth.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	planes   repository.PlaneRepository
	cache    FlightCache
}

type FlightInput struct {
	OrigemID        int64
	DestinoID       int64
	DataHoraPartida time.Time
	DataHoraChegada time.Time
	Status          domain.FlightStatus
	PlaneID         int64
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, planes repository.PlaneRepository, cache FlightCache) *FlightService {
	return &FlightService{flights: flights, airports: airports, planes: planes, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := s.resolveRefs(ctx, input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.FlightStatusProgramado
	}
	flight := &domain.Flight{
		OrigemID:        input.OrigemID,
		DestinoID:       input.DestinoID,
		DataHoraPartida: input.DataHoraPartida,
		DataHoraChegada: input.DataHoraChegada,
		Status:          status,
		PlaneID:         input.PlaneID,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.GetByID(ctx, flight.ID)
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, domain.NewNotFound("Voo não encontrado")
	}
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveRefs(ctx, input); err != nil {
		return nil, err
	}

	flight.OrigemID = input.OrigemID
	flight.DestinoID = input.DestinoID
	flight.DataHoraPartida = input.DataHoraPartida
	flight.DataHoraChegada = input.DataHoraChegada
	if input.Status != "" {
		flight.Status = input.Status
	}
	flight.PlaneID = input.PlaneID
	if err := s.flights.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if flight == nil {
		return domain.NewNotFound("Voo não encontrado")
	}
	if err := s.flights.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListByAirport treats an empty result as a failure, unlike the usual
// list-endpoint convention.
func (s *FlightService) ListByAirport(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	flights, err := s.flights.ListByOrigem(ctx, airportID)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, domain.NewNotFound("Nenhum voo encontrado para este aeroporto")
	}
	return flights, nil
}

func (s *FlightService) ListByPlane(ctx context.Context, planeID int64) ([]domain.Flight, error) {
	flights, err := s.flights.ListByPlane(ctx, planeID)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, domain.NewNotFound("Nenhum voo encontrado para este avião")
	}
	return flights, nil
}

func (s *FlightService) resolveRefs(ctx context.Context, input FlightInput) error {
	origem, err := s.airports.GetByID(ctx, input.OrigemID)
	if err != nil {
		return err
	}
	destino, err := s.airports.GetByID(ctx, input.DestinoID)
	if err != nil {
		return err
	}
	plane, err := s.planes.GetByID(ctx, input.PlaneID)
	if err != nil {
		return err
	}
	if origem == nil || destino == nil || plane == nil {
		return domain.NewInvalidReference("Origem, destino ou avião inválido")
	}
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
