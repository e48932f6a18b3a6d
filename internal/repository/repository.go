// Package repository provides hand-written PostgreSQL queries behind a
// narrow Querier interface. Row structs use pgtype values; mapping to
// domain DTOs happens in the service layer.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries executes the application's SQL against a DBTX.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to the given connection or pool.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}
