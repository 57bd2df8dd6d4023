package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

// FlightRepository always loads the origem, destino and plane relations;
// every relation fetch is an explicit join, never a lazy follow-up query.
type FlightRepository interface {
	Create(ctx context.Context, f *domain.Flight) error
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	ListByOrigem(ctx context.Context, airportID int64) ([]domain.Flight, error)
	ListByPlane(ctx context.Context, planeID int64) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `SELECT f.id, f.origem_id, f.destino_id, f.data_hora_partida, f.data_hora_chegada, f.status, f.registrado_em, f.plane_id,
	o.id, o.nome, o.cidade, o.estado, o.codigo_iata, o.criado_em,
	d.id, d.nome, d.cidade, d.estado, d.codigo_iata, d.criado_em,
	p.id, p.modelo, p.ano_fabricacao, p.capacidade, p.valor_compra, p.status, p.created_at
	FROM flights f
	JOIN airports o ON o.id = f.origem_id
	JOIN airports d ON d.id = f.destino_id
	JOIN planes p ON p.id = f.plane_id`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	var origem, destino domain.Airport
	var plane domain.Plane
	err := row.Scan(&f.ID, &f.OrigemID, &f.DestinoID, &f.DataHoraPartida, &f.DataHoraChegada, &f.Status, &f.RegistradoEm, &f.PlaneID,
		&origem.ID, &origem.Nome, &origem.Cidade, &origem.Estado, &origem.CodigoIATA, &origem.CriadoEm,
		&destino.ID, &destino.Nome, &destino.Cidade, &destino.Estado, &destino.CodigoIATA, &destino.CriadoEm,
		&plane.ID, &plane.Modelo, &plane.AnoFabricacao, &plane.Capacidade, &plane.ValorCompra, &plane.Status, &plane.CreatedAt)
	if err != nil {
		return nil, err
	}
	f.Origem = &origem
	f.Destino = &destino
	f.Plane = &plane
	return &f, nil
}

func (r *PGFlightRepository) collect(rows pgx.Rows) ([]domain.Flight, error) {
	defer rows.Close()
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (origem_id, destino_id, data_hora_partida, data_hora_chegada, status, plane_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, registrado_em`,
		f.OrigemID, f.DestinoID, f.DataHoraPartida, f.DataHoraChegada, f.Status, f.PlaneID).
		Scan(&f.ID, &f.RegistradoEm)
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, flightSelect+` WHERE f.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	_, err := r.db.Exec(ctx, `UPDATE flights SET origem_id=$1, destino_id=$2, data_hora_partida=$3, data_hora_chegada=$4, status=$5, plane_id=$6 WHERE id=$7`,
		f.OrigemID, f.DestinoID, f.DataHoraPartida, f.DataHoraChegada, f.Status, f.PlaneID, f.ID)
	return err
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	return err
}

func (r *PGFlightRepository) ListByOrigem(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightSelect+` WHERE f.origem_id=$1 ORDER BY f.id`, airportID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGFlightRepository) ListByPlane(ctx context.Context, planeID int64) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightSelect+` WHERE f.plane_id=$1 ORDER BY f.id`, planeID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
