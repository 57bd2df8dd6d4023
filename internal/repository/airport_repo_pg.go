package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

// AirportRepository is the data access contract for airports. Single-row
// lookups return (nil, nil) when no row matches; callers decide whether that
// is an error.
type AirportRepository interface {
	Create(ctx context.Context, a *domain.Airport) error
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	GetByCodigoIATA(ctx context.Context, codigo string) (*domain.Airport, error)
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
	ListPlanes(ctx context.Context, airportID int64) ([]domain.Plane, error)
	AddPlane(ctx context.Context, airportID, planeID int64) error
	RemovePlane(ctx context.Context, airportID, planeID int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (nome, cidade, estado, codigo_iata, criado_em)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, a.Nome, a.Cidade, a.Estado, a.CodigoIATA, a.CriadoEm).Scan(&a.ID)
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, cidade, estado, codigo_iata, criado_em FROM airports ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Nome, &a.Cidade, &a.Estado, &a.CodigoIATA, &a.CriadoEm); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nome, cidade, estado, codigo_iata, criado_em FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Nome, &a.Cidade, &a.Estado, &a.CodigoIATA, &a.CriadoEm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) GetByCodigoIATA(ctx context.Context, codigo string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nome, cidade, estado, codigo_iata, criado_em FROM airports WHERE codigo_iata=$1`, codigo)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Nome, &a.Cidade, &a.Estado, &a.CodigoIATA, &a.CriadoEm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	_, err := r.db.Exec(ctx, `UPDATE airports SET nome=$1, cidade=$2, estado=$3, codigo_iata=$4, criado_em=$5 WHERE id=$6`,
		a.Nome, a.Cidade, a.Estado, a.CodigoIATA, a.CriadoEm, a.ID)
	return err
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	return err
}

func (r *PGAirportRepository) ListPlanes(ctx context.Context, airportID int64) ([]domain.Plane, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, p.modelo, p.ano_fabricacao, p.capacidade, p.valor_compra, p.status, p.created_at
		FROM planes p
		JOIN airport_planes ap ON ap.plane_id = p.id
		WHERE ap.airport_id = $1
		ORDER BY p.id`, airportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planes := make([]domain.Plane, 0)
	for rows.Next() {
		var p domain.Plane
		if err := rows.Scan(&p.ID, &p.Modelo, &p.AnoFabricacao, &p.Capacidade, &p.ValorCompra, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return planes, rows.Err()
}

func (r *PGAirportRepository) AddPlane(ctx context.Context, airportID, planeID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO airport_planes (airport_id, plane_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, airportID, planeID)
	return err
}

func (r *PGAirportRepository) RemovePlane(ctx context.Context, airportID, planeID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM airport_planes WHERE airport_id=$1 AND plane_id=$2`, airportID, planeID)
	return err
}

var _ AirportRepository = (*PGAirportRepository)(nil)
