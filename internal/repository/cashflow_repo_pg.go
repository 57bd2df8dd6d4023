package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

type CashFlowRepository interface {
	Create(ctx context.Context, cf *domain.CashFlow) error
	List(ctx context.Context) ([]domain.CashFlow, error)
	GetByID(ctx context.Context, id int64) (*domain.CashFlow, error)
	Update(ctx context.Context, cf *domain.CashFlow) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) ([]domain.CashFlow, error)
	ListByType(ctx context.Context, t domain.CashFlowType) ([]domain.CashFlow, error)
	ListByDescription(ctx context.Context, description string) ([]domain.CashFlow, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.CashFlow, error)
	ListByAirport(ctx context.Context, airportID int64) ([]domain.CashFlow, error)
}

type PGCashFlowRepository struct {
	db *pgxpool.Pool
}

func NewCashFlowRepository(db *pgxpool.Pool) CashFlowRepository {
	return &PGCashFlowRepository{db: db}
}

const cashFlowColumns = `id, description, type, amount, created_at, plane_id, airport_id`

func scanCashFlow(row pgx.Row) (*domain.CashFlow, error) {
	var cf domain.CashFlow
	err := row.Scan(&cf.ID, &cf.Description, &cf.Type, &cf.Amount, &cf.CreatedAt, &cf.PlaneID, &cf.AirportID)
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

func (r *PGCashFlowRepository) collect(rows pgx.Rows) ([]domain.CashFlow, error) {
	defer rows.Close()
	entries := make([]domain.CashFlow, 0)
	for rows.Next() {
		cf, err := scanCashFlow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *cf)
	}
	return entries, rows.Err()
}

func (r *PGCashFlowRepository) Create(ctx context.Context, cf *domain.CashFlow) error {
	return r.db.QueryRow(ctx, `INSERT INTO cash_flows (description, type, amount, plane_id, airport_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		cf.Description, cf.Type, cf.Amount, cf.PlaneID, cf.AirportID).Scan(&cf.ID, &cf.CreatedAt)
}

func (r *PGCashFlowRepository) List(ctx context.Context) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGCashFlowRepository) GetByID(ctx context.Context, id int64) (*domain.CashFlow, error) {
	cf, err := scanCashFlow(r.db.QueryRow(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cf, nil
}

func (r *PGCashFlowRepository) Update(ctx context.Context, cf *domain.CashFlow) error {
	// created_at is reset on every update: it records when the entry was
	// last written, not when it was first created.
	return r.db.QueryRow(ctx, `UPDATE cash_flows SET description=$1, type=$2, amount=$3, plane_id=$4, airport_id=$5, created_at=now() WHERE id=$6 RETURNING created_at`,
		cf.Description, cf.Type, cf.Amount, cf.PlaneID, cf.AirportID, cf.ID).Scan(&cf.CreatedAt)
}

func (r *PGCashFlowRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cash_flows WHERE id=$1`, id)
	return err
}

func (r *PGCashFlowRepository) DeleteAll(ctx context.Context) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM cash_flows RETURNING `+cashFlowColumns)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGCashFlowRepository) ListByType(ctx context.Context, t domain.CashFlowType) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE type=$1`, t)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGCashFlowRepository) ListByDescription(ctx context.Context, description string) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE description=$1`, description)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGCashFlowRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE created_at::date = $1::date`, date)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGCashFlowRepository) ListByAirport(ctx context.Context, airportID int64) ([]domain.CashFlow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE airport_id=$1`, airportID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

var _ CashFlowRepository = (*PGCashFlowRepository)(nil)
