package squeal

import "strings"

// FromSource is the table expression of a FROM or JOIN clause.
type FromSource interface {
	SQL() string
	isFromSource()
}

// Table is a table referenced by name (optionally with an alias, e.g. "users u").
type Table string

func (t Table) SQL() string { return string(t) }
func (Table) isFromSource() {}

// FromSubquery is a derived table. PostgreSQL requires the alias.
type FromSubquery struct {
	Query Query
	Alias string
}

// SQL renders "(query) AS alias".
func (f FromSubquery) SQL() string {
	return "(" + f.Query.SQL() + ") AS " + f.Alias
}

func (FromSubquery) isFromSource() {}

// JoinType selects the kind of JOIN.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// SQL renders the join keyword.
func (j JoinType) SQL() string {
	switch j {
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	case FullJoin:
		return "FULL JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

// Join is a single JOIN clause. On is nil only for cross joins.
type Join struct {
	Type   JoinType
	Source FromSource
	On     Term
}

// SQL renders the JOIN clause.
func (j Join) SQL() string {
	// CROSS JOIN doesn't have an ON clause
	if j.Type == CrossJoin || j.On == nil {
		return j.Type.SQL() + " " + j.Source.SQL()
	}
	return j.Type.SQL() + " " + j.Source.SQL() + " ON " + j.On.SQL()
}

// Cte is a single named WITH-clause query.
type Cte struct {
	Name  string
	Query Query
}

// SQL renders "name AS (query)".
func (c Cte) SQL() string {
	return c.Name + " AS (" + c.Query.SQL() + ")"
}

// Having filters grouped rows.
type Having struct {
	Term Term
}

// NewHaving creates a HAVING clause.
func NewHaving(t Term) Having {
	return Having{Term: t}
}

// SQL renders "HAVING term".
func (h Having) SQL() string {
	return "HAVING " + h.Term.SQL()
}

// Direction is the sort direction of an OrderedColumn.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// OrderedColumn is a column with an explicit sort direction.
type OrderedColumn struct {
	Column    string
	Direction Direction
}

// Asc sorts by column ascending.
func Asc(column string) OrderedColumn {
	return OrderedColumn{Column: column, Direction: Ascending}
}

// Desc sorts by column descending.
func Desc(column string) OrderedColumn {
	return OrderedColumn{Column: column, Direction: Descending}
}

// SQL renders "column ASC" or "column DESC".
func (o OrderedColumn) SQL() string {
	dir := o.Direction
	if dir == "" {
		dir = Ascending
	}
	return o.Column + " " + string(dir)
}

// OrderBy is an ORDER BY clause.
type OrderBy struct {
	Columns []OrderedColumn
}

// SQL renders "ORDER BY a ASC, b DESC".
func (o OrderBy) SQL() string {
	parts := make([]string, len(o.Columns))
	for i, c := range o.Columns {
		parts[i] = c.SQL()
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

func cloneFromSource(f FromSource) FromSource {
	if s, ok := f.(FromSubquery); ok {
		s.Query = s.Query.clone()
		return s
	}
	return f
}
