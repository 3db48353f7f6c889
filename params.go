package squeal

import "strconv"

// PgParams hands out PostgreSQL positional placeholders. The zero value is
// ready to use and starts at $1.
type PgParams struct {
	count int
}

// Seq advances the counter and returns the next placeholder ("$1", "$2", ...).
func (p *PgParams) Seq() string {
	p.count++
	return "$" + strconv.Itoa(p.count)
}

// Count returns the number of placeholders issued so far.
func (p *PgParams) Count() int {
	return p.count
}

// Parameterized is implemented by builders that own a placeholder counter.
// Each builder numbers its placeholders independently, starting at $1.
type Parameterized interface {
	Param() string
}

var (
	_ Parameterized = (*QueryBuilder)(nil)
	_ Parameterized = (*InsertBuilder)(nil)
	_ Parameterized = (*UpdateBuilder)(nil)
	_ Parameterized = (*DeleteBuilder)(nil)
)

// andWhere composes t onto an existing WHERE term with AND.
func andWhere(where, t Term) Term {
	if where == nil {
		return t
	}
	return And(where, t)
}

// orWhere composes t onto an existing WHERE term with OR.
func orWhere(where, t Term) Term {
	if where == nil {
		return t
	}
	return Or(where, t)
}
