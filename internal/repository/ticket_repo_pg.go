package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

// TicketRepository loads the passageiro and voo relations on every read.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) error
	Delete(ctx context.Context, id int64) error
	ListByPassageiro(ctx context.Context, passageiroID int64) ([]domain.Ticket, error)
	ListByVoo(ctx context.Context, vooID int64) ([]domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketSelect = `SELECT t.id, t.assento, t.preco, t.data_compra, t.passageiro_id, t.voo_id,
	ps.id, ps.nome, ps.documento_identidade, ps.email, ps.created_at, ps.plane_id,
	f.id, f.origem_id, f.destino_id, f.data_hora_partida, f.data_hora_chegada, f.status, f.registrado_em, f.plane_id
	FROM tickets t
	JOIN passengers ps ON ps.id = t.passageiro_id
	JOIN flights f ON f.id = t.voo_id`

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	var p domain.Passenger
	var f domain.Flight
	err := row.Scan(&t.ID, &t.Assento, &t.Preco, &t.DataCompra, &t.PassageiroID, &t.VooID,
		&p.ID, &p.Nome, &p.DocumentoIdentidade, &p.Email, &p.CreatedAt, &p.PlaneID,
		&f.ID, &f.OrigemID, &f.DestinoID, &f.DataHoraPartida, &f.DataHoraChegada, &f.Status, &f.RegistradoEm, &f.PlaneID)
	if err != nil {
		return nil, err
	}
	t.Passageiro = &p
	t.Voo = &f
	return &t, nil
}

func (r *PGTicketRepository) collect(rows pgx.Rows) ([]domain.Ticket, error) {
	defer rows.Close()
	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO tickets (assento, preco, passageiro_id, voo_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, data_compra`,
		t.Assento, t.Preco, t.PassageiroID, t.VooID).Scan(&t.ID, &t.DataCompra)
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, ticketSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, ticketSelect+` WHERE t.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *PGTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	_, err := r.db.Exec(ctx, `UPDATE tickets SET assento=$1, preco=$2, passageiro_id=$3, voo_id=$4 WHERE id=$5`,
		t.Assento, t.Preco, t.PassageiroID, t.VooID, t.ID)
	return err
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	return err
}

func (r *PGTicketRepository) ListByPassageiro(ctx context.Context, passageiroID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, ticketSelect+` WHERE t.passageiro_id=$1 ORDER BY t.id`, passageiroID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PGTicketRepository) ListByVoo(ctx context.Context, vooID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, ticketSelect+` WHERE t.voo_id=$1 ORDER BY t.id`, vooID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

var _ TicketRepository = (*PGTicketRepository)(nil)
