package passenger

import (
	"context"

	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/repository"
)

type PassengerUseCase interface {
	Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

type PassengerService struct {
	passengers repository.PassengerRepository
}

type PassengerInput struct {
	Nome                string
	DocumentoIdentidade *string
	Email               *string
	PlaneID             *int64
}

func NewPassengerService(passengers repository.PassengerRepository) *PassengerService {
	return &PassengerService{passengers: passengers}
}

// Create relies on the store's unique constraints for documentoIdentidade
// and email; a duplicate surfaces as a storage error.
func (s *PassengerService) Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error) {
	passenger := &domain.Passenger{
		Nome:                input.Nome,
		DocumentoIdentidade: input.DocumentoIdentidade,
		Email:               input.Email,
		PlaneID:             input.PlaneID,
	}
	if err := s.passengers.Create(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.passengers.List(ctx)
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	passenger, err := s.passengers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, domain.NewNotFound("Passageiro não encontrado")
	}
	return passenger, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error) {
	passenger, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	passenger.Nome = input.Nome
	passenger.DocumentoIdentidade = input.DocumentoIdentidade
	passenger.Email = input.Email
	passenger.PlaneID = input.PlaneID
	if err := s.passengers.Update(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

// Delete removes the passenger; the schema cascades to their tickets.
func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.passengers.Delete(ctx, id)
}

var _ PassengerUseCase = (*PassengerService)(nil)
