// Package pgexec runs rendered squeal statements against a database/sql handle.
//
// The squeal core only produces text. pgexec is the boundary where that text
// meets a driver: it rejects empty statements, logs each statement at debug
// level, and maps PostgreSQL error codes onto sentinel errors.
//
//	db, err := pgexec.Open(ctx, "pgx", dsn)
//	if err != nil {
//		return err
//	}
//	ex := pgexec.New(db, pgexec.WithLogger(logger))
//
//	ib := squeal.I("users")
//	stmt := ib.Columns("name").Values(ib.Param()).Build()
//	res, err := ex.Exec(ctx, stmt, "alice")
package pgexec

import (
	"context"
	"database/sql"
)

// Execer is the minimal interface needed to run statements.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txBeginner is satisfied by *sql.DB.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
