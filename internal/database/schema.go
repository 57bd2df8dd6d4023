package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Cascade rules live in the schema, not in application code: deleting a plane
// or airport removes its cash flows, deleting a passenger or flight removes
// its tickets, and deleting a plane detaches passengers instead of failing.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS airports (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		cidade TEXT NOT NULL,
		estado TEXT NOT NULL,
		codigo_iata TEXT NOT NULL UNIQUE,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS planes (
		id BIGSERIAL PRIMARY KEY,
		modelo TEXT NOT NULL,
		ano_fabricacao INT NOT NULL,
		capacidade INT NOT NULL,
		valor_compra NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'operante',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS airport_planes (
		airport_id BIGINT NOT NULL REFERENCES airports(id) ON DELETE CASCADE,
		plane_id BIGINT NOT NULL REFERENCES planes(id) ON DELETE CASCADE,
		PRIMARY KEY (airport_id, plane_id)
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		matricula TEXT UNIQUE,
		funcao TEXT NOT NULL,
		contratado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS passengers (
		id BIGSERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		documento_identidade TEXT UNIQUE,
		email TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		plane_id BIGINT REFERENCES planes(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		origem_id BIGINT NOT NULL REFERENCES airports(id),
		destino_id BIGINT NOT NULL REFERENCES airports(id),
		data_hora_partida TIMESTAMPTZ NOT NULL,
		data_hora_chegada TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'programado',
		registrado_em TIMESTAMPTZ NOT NULL DEFAULT now(),
		plane_id BIGINT NOT NULL REFERENCES planes(id)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGSERIAL PRIMARY KEY,
		assento TEXT NOT NULL,
		preco NUMERIC(10,2) NOT NULL,
		data_compra TIMESTAMPTZ NOT NULL DEFAULT now(),
		passageiro_id BIGINT NOT NULL REFERENCES passengers(id) ON DELETE CASCADE,
		voo_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS cash_flows (
		id BIGSERIAL PRIMARY KEY,
		description TEXT NOT NULL,
		type TEXT NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		plane_id BIGINT NOT NULL REFERENCES planes(id) ON DELETE CASCADE,
		airport_id BIGINT NOT NULL REFERENCES airports(id) ON DELETE CASCADE
	)`,
}

// EnsureSchema creates any missing tables. It runs at process start so a
// fresh database is usable without a separate migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
