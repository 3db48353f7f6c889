package pgexec

import (
	"database/sql"
	"database/sql/driver"

	"github.com/lib/pq"
)

// ArrayValue binds a Go slice as a PostgreSQL array and scans one back.
type ArrayValue interface {
	driver.Valuer
	sql.Scanner
}

// Array wraps a slice for use with = ANY($1) style parameters:
//
//	q := squeal.Q()
//	stmt := q.Select("id").From("users").
//		Where(squeal.Cond(squeal.Atom("id"), squeal.OpEquals, squeal.Atom("ANY("+q.Param()+")"))).
//		Build()
//	rows, err := ex.Query(ctx, stmt, pgexec.Array([]int64{1, 2, 3}))
func Array(v any) ArrayValue {
	return pq.Array(v)
}
