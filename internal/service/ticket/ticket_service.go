package ticket

import (
	"context"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
	"github.com/shopspring/decimal"
)

type TicketUseCase interface {
	Create(ctx context.Context, input TicketInput) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Update(ctx context.Context, id int64, input TicketInput) (*domain.Ticket, error)
	Delete(ctx context.Context, id int64) error
	ListByPassageiro(ctx context.Context, passageiroID int64) ([]domain.Ticket, error)
	ListByVoo(ctx context.Context, vooID int64) ([]domain.Ticket, error)
}

type TicketService struct {
	tickets    repository.TicketRepository
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
}

type TicketInput struct {
	Assento      string
	Preco        decimal.Decimal
	PassageiroID int64
	VooID        int64
}

func NewTicketService(tickets repository.TicketRepository, passengers repository.PassengerRepository, flights repository.FlightRepository) *TicketService {
	return &TicketService{tickets: tickets, passengers: passengers, flights: flights}
}

func (s *TicketService) Create(ctx context.Context, input TicketInput) (*domain.Ticket, error) {
	if err := s.resolveRefs(ctx, input.PassageiroID, input.VooID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Assento:      input.Assento,
		Preco:        input.Preco,
		PassageiroID: input.PassageiroID,
		VooID:        input.VooID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return s.tickets.GetByID(ctx, ticket.ID)
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// GetByID returns (nil, nil) for an unknown id; the handler turns that into
// a 404.
func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) Update(ctx context.Context, id int64, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.NewNotFound("Ticket not found")
	}
	if err := s.resolveRefs(ctx, input.PassageiroID, input.VooID); err != nil {
		return nil, err
	}

	ticket.Assento = input.Assento
	ticket.Preco = input.Preco
	ticket.PassageiroID = input.PassageiroID
	ticket.VooID = input.VooID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) Delete(ctx context.Context, id int64) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.NewNotFound("Ticket not found")
	}
	return s.tickets.Delete(ctx, id)
}

func (s *TicketService) ListByPassageiro(ctx context.Context, passageiroID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByPassageiro(ctx, passageiroID)
}

func (s *TicketService) ListByVoo(ctx context.Context, vooID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByVoo(ctx, vooID)
}

func (s *TicketService) resolveRefs(ctx context.Context, passageiroID, vooID int64) error {
	passageiro, err := s.passengers.GetByID(ctx, passageiroID)
	if err != nil {
		return err
	}
	voo, err := s.flights.GetByID(ctx, vooID)
	if err != nil {
		return err
	}
	if passageiro == nil || voo == nil {
		return domain.NewInvalidReference("Passenger or flight not found")
	}
	return nil
}

var _ TicketUseCase = (*TicketService)(nil)
