package cashflow

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lribeiro91/aerogest/internal/domain"
	"github.com/lribeiro91/aerogest/internal/kafka"
	"github.com/lribeiro91/aerogest/internal/repository"
	"github.com/shopspring/decimal"
)

type CashFlowUseCase interface {
	Create(ctx context.Context, input CashFlowInput) (*domain.CashFlow, error)
	History(ctx context.Context) ([]domain.CashFlow, error)
	GetByID(ctx context.Context, id int64) (*domain.CashFlow, error)
	Update(ctx context.Context, id int64, input CashFlowInput) (*domain.CashFlow, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) ([]domain.CashFlow, error)
	ListByType(ctx context.Context, t domain.CashFlowType) ([]domain.CashFlow, error)
	ListByDescription(ctx context.Context, description string) ([]domain.CashFlow, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.CashFlow, error)
	Report(ctx context.Context) (*domain.CashFlowReport, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CashFlowService struct {
	cashFlows          repository.CashFlowRepository
	planes             repository.PlaneRepository
	airports           repository.AirportRepository
	producer           Producer
	financeTopic       string
	notificationsTopic string
}

type CashFlowInput struct {
	Description string
	Type        domain.CashFlowType
	Amount      decimal.Decimal
	PlaneID     int64
	AirportID   int64
}

type CashFlowServiceOption func(*CashFlowService)

func WithProducer(producer Producer, topic string) CashFlowServiceOption {
	return func(s *CashFlowService) {
		s.producer = producer
		s.financeTopic = topic
	}
}

// WithNotificationsTopic mirrors every finance event to a second topic, the
// one the worker's email notifier consumes.
func WithNotificationsTopic(topic string) CashFlowServiceOption {
	return func(s *CashFlowService) {
		s.notificationsTopic = topic
	}
}

func NewCashFlowService(cashFlows repository.CashFlowRepository, planes repository.PlaneRepository, airports repository.AirportRepository, opts ...CashFlowServiceOption) *CashFlowService {
	service := &CashFlowService{cashFlows: cashFlows, planes: planes, airports: airports}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create assumes the amount and type were shape-checked by the handler; it
// only enforces that both referenced rows exist.
func (s *CashFlowService) Create(ctx context.Context, input CashFlowInput) (*domain.CashFlow, error) {
	if err := s.resolveRefs(ctx, input.PlaneID, input.AirportID); err != nil {
		return nil, err
	}

	entry := &domain.CashFlow{
		Description: input.Description,
		Type:        input.Type,
		Amount:      input.Amount,
		PlaneID:     input.PlaneID,
		AirportID:   input.AirportID,
	}
	if err := s.cashFlows.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.publish(ctx, "cashflow_created", entry)
	return entry, nil
}

func (s *CashFlowService) History(ctx context.Context) ([]domain.CashFlow, error) {
	return s.cashFlows.List(ctx)
}

// GetByID returns (nil, nil) for an unknown id; the handler turns that into
// a 404.
func (s *CashFlowService) GetByID(ctx context.Context, id int64) (*domain.CashFlow, error) {
	return s.cashFlows.GetByID(ctx, id)
}

// Update checks the referenced rows before the entry itself, so a bad
// planeId reports InvalidReference even when the entry id is also unknown.
func (s *CashFlowService) Update(ctx context.Context, id int64, input CashFlowInput) (*domain.CashFlow, error) {
	if err := s.resolveRefs(ctx, input.PlaneID, input.AirportID); err != nil {
		return nil, err
	}

	entry, err := s.cashFlows.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.NewNotFound("CashFlow not found")
	}

	entry.Description = input.Description
	entry.Type = input.Type
	entry.Amount = input.Amount
	entry.PlaneID = input.PlaneID
	entry.AirportID = input.AirportID
	if err := s.cashFlows.Update(ctx, entry); err != nil {
		return nil, err
	}
	s.publish(ctx, "cashflow_updated", entry)
	return entry, nil
}

func (s *CashFlowService) Delete(ctx context.Context, id int64) error {
	entry, err := s.cashFlows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.NewNotFound("CashFlow not found")
	}
	if err := s.cashFlows.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "cashflow_deleted", entry)
	return nil
}

func (s *CashFlowService) DeleteAll(ctx context.Context) ([]domain.CashFlow, error) {
	return s.cashFlows.DeleteAll(ctx)
}

func (s *CashFlowService) ListByType(ctx context.Context, t domain.CashFlowType) ([]domain.CashFlow, error) {
	return s.cashFlows.ListByType(ctx, t)
}

func (s *CashFlowService) ListByDescription(ctx context.Context, description string) ([]domain.CashFlow, error) {
	return s.cashFlows.ListByDescription(ctx, description)
}

func (s *CashFlowService) ListByDate(ctx context.Context, date time.Time) ([]domain.CashFlow, error) {
	return s.cashFlows.ListByDate(ctx, date)
}

// Report scans every entry and reduces it to income, expense and balance.
// Amounts are decimals end to end, so the balance is exact to the store's
// two decimal places.
func (s *CashFlowService) Report(ctx context.Context) (*domain.CashFlowReport, error) {
	all, err := s.cashFlows.List(ctx)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, entry := range all {
		switch entry.Type {
		case domain.CashFlowTypeIncome:
			income = income.Add(entry.Amount)
		case domain.CashFlowTypeExpense:
			expense = expense.Add(entry.Amount)
		}
	}

	return &domain.CashFlowReport{
		Balance: income.Sub(expense),
		Income:  income,
		Expense: expense,
		History: all,
	}, nil
}

func (s *CashFlowService) resolveRefs(ctx context.Context, planeID, airportID int64) error {
	plane, err := s.planes.GetByID(ctx, planeID)
	if err != nil {
		return err
	}
	if plane == nil {
		return domain.NewInvalidReference("Plane not found")
	}
	airport, err := s.airports.GetByID(ctx, airportID)
	if err != nil {
		return err
	}
	if airport == nil {
		return domain.NewInvalidReference("Airport not found")
	}
	return nil
}

func (s *CashFlowService) publish(ctx context.Context, eventType string, entry *domain.CashFlow) {
	if s.producer == nil || s.financeTopic == "" {
		return
	}
	event := kafka.FinanceEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		CashFlowID:  entry.ID,
		Description: entry.Description,
		FlowType:    string(entry.Type),
		Amount:      entry.Amount,
		PlaneID:     entry.PlaneID,
		AirportID:   entry.AirportID,
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.financeTopic, event.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for cash flow %d: %v", eventType, entry.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for cash flow %d: %v", eventType, entry.ID, err)
		}
	}
}

var _ CashFlowUseCase = (*CashFlowService)(nil)
