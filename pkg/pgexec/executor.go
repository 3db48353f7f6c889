package pgexec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/upside-down-research/squeal"
)

// Executor renders statements and runs them on an Execer.
type Executor struct {
	db     Execer
	logger zerolog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger used for statement tracing.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Executor) {
		e.logger = l
	}
}

// New creates an Executor over db.
func New(db Execer, opts ...Option) *Executor {
	e := &Executor{db: db, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exec runs a statement that returns no rows.
func (e *Executor) Exec(ctx context.Context, stmt squeal.Statement, args ...any) (sql.Result, error) {
	text, err := render(stmt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := e.db.ExecContext(ctx, text, args...)
	e.trace("exec", text, args, start, err)
	if err != nil {
		return nil, mapError("exec", err)
	}
	return res, nil
}

// Query runs a statement that returns rows. The caller closes the rows.
func (e *Executor) Query(ctx context.Context, stmt squeal.Statement, args ...any) (*sql.Rows, error) {
	text, err := render(stmt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := e.db.QueryContext(ctx, text, args...)
	e.trace("query", text, args, start, err)
	if err != nil {
		return nil, mapError("query", err)
	}
	return rows, nil
}

// QueryRow runs a statement expected to return at most one row.
// Errors from the database are deferred to Scan, as with database/sql.
func (e *Executor) QueryRow(ctx context.Context, stmt squeal.Statement, args ...any) (*sql.Row, error) {
	text, err := render(stmt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	row := e.db.QueryRowContext(ctx, text, args...)
	e.trace("query_row", text, args, start, nil)
	return row, nil
}

// InTx runs fn with an Executor bound to a transaction. The transaction
// commits when fn returns nil and rolls back otherwise. *sql.DB and *sql.Conn
// begin a new transaction; an Execer without BeginTx, such as *sql.Tx, runs
// fn directly.
func (e *Executor) InTx(ctx context.Context, fn func(*Executor) error) error {
	txer, ok := e.db.(txBeginner)
	if !ok {
		return fn(e)
	}

	tx, err := txer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&Executor{db: tx, logger: e.logger}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (e *Executor) trace(op, text string, args []any, start time.Time, err error) {
	ev := e.logger.Debug()
	if err != nil {
		ev = e.logger.Warn().Err(err)
	}
	ev.Str("op", op).
		Str("sql", text).
		Int("args", len(args)).
		Dur("elapsed", time.Since(start)).
		Msg("statement")
}

func render(stmt squeal.Statement) (string, error) {
	if stmt == nil {
		return "", ErrEmptyStatement
	}
	text := stmt.SQL()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyStatement
	}
	return text, nil
}
