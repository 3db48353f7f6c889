package pgexec

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Sentinel errors returned by the executor.
// Use the Is*Err helpers to test for them through wrapping.
var (
	// ErrNoDriver is returned by Open when the named driver is not registered.
	ErrNoDriver = errors.New("pgexec: database driver not registered")

	// ErrEmptyStatement is returned when a statement renders to blank text.
	ErrEmptyStatement = errors.New("pgexec: statement renders empty SQL")

	// ErrUndefinedTable wraps SQLSTATE 42P01.
	ErrUndefinedTable = errors.New("pgexec: undefined table")

	// ErrUndefinedColumn wraps SQLSTATE 42703.
	ErrUndefinedColumn = errors.New("pgexec: undefined column")

	// ErrUniqueViolation wraps SQLSTATE 23505.
	ErrUniqueViolation = errors.New("pgexec: unique violation")

	// ErrSyntax wraps SQLSTATE 42601.
	ErrSyntax = errors.New("pgexec: syntax error")
)

// PostgreSQL error codes mapped onto sentinels.
const (
	pgUndefinedTable  = "42P01" // undefined_table
	pgUndefinedColumn = "42703" // undefined_column
	pgUniqueViolation = "23505" // unique_violation
	pgSyntaxError     = "42601" // syntax_error
)

// IsNoDriverErr returns true if err is or wraps ErrNoDriver.
func IsNoDriverErr(err error) bool {
	return errors.Is(err, ErrNoDriver)
}

// IsEmptyStatementErr returns true if err is or wraps ErrEmptyStatement.
func IsEmptyStatementErr(err error) bool {
	return errors.Is(err, ErrEmptyStatement)
}

// IsUndefinedTableErr returns true if err is or wraps ErrUndefinedTable.
func IsUndefinedTableErr(err error) bool {
	return errors.Is(err, ErrUndefinedTable)
}

// IsUndefinedColumnErr returns true if err is or wraps ErrUndefinedColumn.
func IsUndefinedColumnErr(err error) bool {
	return errors.Is(err, ErrUndefinedColumn)
}

// IsUniqueViolationErr returns true if err is or wraps ErrUniqueViolation.
func IsUniqueViolationErr(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}

// IsSyntaxErr returns true if err is or wraps ErrSyntax.
func IsSyntaxErr(err error) bool {
	return errors.Is(err, ErrSyntax)
}

// mapError wraps driver errors carrying a known SQLSTATE in the matching
// sentinel. Both the original error and the sentinel stay reachable through
// errors.Is and errors.As.
func mapError(operation string, err error) error {
	var sentinel error
	switch SQLState(err) {
	case pgUndefinedTable:
		sentinel = ErrUndefinedTable
	case pgUndefinedColumn:
		sentinel = ErrUndefinedColumn
	case pgUniqueViolation:
		sentinel = ErrUniqueViolation
	case pgSyntaxError:
		sentinel = ErrSyntax
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
	return fmt.Errorf("%s: %w: %w", operation, sentinel, err)
}

// SQLState extracts the SQLSTATE code from a PostgreSQL error raised by
// pgx or lib/pq. Returns "" for any other error.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
