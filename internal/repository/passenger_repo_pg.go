package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Update(ctx context.Context, p *domain.Passenger) error
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO passengers (nome, documento_identidade, email, plane_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.Nome, p.DocumentoIdentidade, p.Email, p.PlaneID).Scan(&p.ID, &p.CreatedAt)
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, documento_identidade, email, created_at, plane_id FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Nome, &p.DocumentoIdentidade, &p.Email, &p.CreatedAt, &p.PlaneID); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nome, documento_identidade, email, created_at, plane_id FROM passengers WHERE id=$1`, id)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.Nome, &p.DocumentoIdentidade, &p.Email, &p.CreatedAt, &p.PlaneID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	_, err := r.db.Exec(ctx, `UPDATE passengers SET nome=$1, documento_identidade=$2, email=$3, plane_id=$4 WHERE id=$5`,
		p.Nome, p.DocumentoIdentidade, p.Email, p.PlaneID, p.ID)
	return err
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	return err
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
