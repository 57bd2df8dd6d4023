package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lribeiro91/aerogest/internal/domain"
)

// Matricula uniqueness is a database constraint; a duplicate insert surfaces
// as the driver's constraint-violation error, not as a domain failure.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role domain.EmployeeRole) ([]domain.Employee, error)
}

type PGEmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) EmployeeRepository {
	return &PGEmployeeRepository{db: db}
}

func (r *PGEmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	var contratadoEm *time.Time
	if !e.ContratadoEm.IsZero() {
		contratadoEm = &e.ContratadoEm
	}
	return r.db.QueryRow(ctx, `INSERT INTO employees (nome, matricula, funcao, contratado_em)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING id, contratado_em`,
		e.Nome, e.Matricula, e.Funcao, contratadoEm).Scan(&e.ID, &e.ContratadoEm)
}

func (r *PGEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, matricula, funcao, contratado_em FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (r *PGEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	row := r.db.QueryRow(ctx, `SELECT id, nome, matricula, funcao, contratado_em FROM employees WHERE id=$1`, id)
	var e domain.Employee
	if err := row.Scan(&e.ID, &e.Nome, &e.Matricula, &e.Funcao, &e.ContratadoEm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGEmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	_, err := r.db.Exec(ctx, `UPDATE employees SET nome=$1, matricula=$2, funcao=$3, contratado_em=$4 WHERE id=$5`,
		e.Nome, e.Matricula, e.Funcao, e.ContratadoEm, e.ID)
	return err
}

func (r *PGEmployeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	return err
}

func (r *PGEmployeeRepository) ListByRole(ctx context.Context, role domain.EmployeeRole) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nome, matricula, funcao, contratado_em FROM employees WHERE funcao=$1 ORDER BY id`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Nome, &e.Matricula, &e.Funcao, &e.ContratadoEm); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

var _ EmployeeRepository = (*PGEmployeeRepository)(nil)
