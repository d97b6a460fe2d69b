package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the query surface shared by *pgxpool.Pool and pgx.Tx, so a
// repository can run against the pool or inside a transaction unchanged.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxDatabase additionally opens transactions. Satisfied by *pgxpool.Pool.
type TxDatabase interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}
