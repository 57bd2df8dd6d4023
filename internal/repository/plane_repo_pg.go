package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

type PlaneRepository interface {
	Create(ctx context.Context, p *domain.Plane) error
	List(ctx context.Context) ([]domain.Plane, error)
	GetByID(ctx context.Context, id int64) (*domain.Plane, error)
	Update(ctx context.Context, p *domain.Plane) error
	Delete(ctx context.Context, id int64) error
}

type PGPlaneRepository struct {
	db *pgxpool.Pool
}

func NewPlaneRepository(db *pgxpool.Pool) PlaneRepository {
	return &PGPlaneRepository{db: db}
}

func (r *PGPlaneRepository) Create(ctx context.Context, p *domain.Plane) error {
	// created_at falls back to the database clock when the caller did not
	// supply one.
	var createdAt *time.Time
	if !p.CreatedAt.IsZero() {
		createdAt = &p.CreatedAt
	}
	return r.db.QueryRow(ctx, `INSERT INTO planes (modelo, ano_fabricacao, capacidade, valor_compra, created_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()))
		RETURNING id, status, created_at`,
		p.Modelo, p.AnoFabricacao, p.Capacidade, p.ValorCompra, createdAt).
		Scan(&p.ID, &p.Status, &p.CreatedAt)
}

func (r *PGPlaneRepository) List(ctx context.Context) ([]domain.Plane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, modelo, ano_fabricacao, capacidade, valor_compra, status, created_at FROM planes ORDER BY id`)
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

func (r *PGPlaneRepository) GetByID(ctx context.Context, id int64) (*domain.Plane, error) {
	row := r.db.QueryRow(ctx, `SELECT id, modelo, ano_fabricacao, capacidade, valor_compra, status, created_at FROM planes WHERE id=$1`, id)
	var p domain.Plane
	if err := row.Scan(&p.ID, &p.Modelo, &p.AnoFabricacao, &p.Capacidade, &p.ValorCompra, &p.Status, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPlaneRepository) Update(ctx context.Context, p *domain.Plane) error {
	_, err := r.db.Exec(ctx, `UPDATE planes SET modelo=$1, ano_fabricacao=$2, capacidade=$3, valor_compra=$4 WHERE id=$5`,
		p.Modelo, p.AnoFabricacao, p.Capacidade, p.ValorCompra, p.ID)
	return err
}

func (r *PGPlaneRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM planes WHERE id=$1`, id)
	return err
}

var _ PlaneRepository = (*PGPlaneRepository)(nil)
