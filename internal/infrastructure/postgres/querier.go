package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the slice of pgx that the shared helpers need. *pgxpool.Pool
// and pgx.Tx both satisfy it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner lets the scan helpers accept pgx.Row and pgx.Rows alike.
type rowScanner interface {
	Scan(dest ...any) error
}
