package squeal

import "strings"

// SelectExpression is a single item of an Expressions projection.
type SelectExpression interface {
	SQL() string
	isSelectExpression()
}

// Column is a plain column name or expression text.
type Column string

func (c Column) SQL() string       { return string(c) }
func (Column) isSelectExpression() {}

// SubqueryColumn projects a scalar subquery, optionally aliased.
type SubqueryColumn struct {
	Query Query
	Alias string // optional
}

// SQL renders "(query) AS alias", or "(query)" without an alias.
func (s SubqueryColumn) SQL() string {
	if s.Alias == "" {
		return "(" + s.Query.SQL() + ")"
	}
	return "(" + s.Query.SQL() + ") AS " + s.Alias
}

func (SubqueryColumn) isSelectExpression() {}

// ExprColumn projects an arbitrary term, optionally aliased.
type ExprColumn struct {
	Term  Term
	Alias string // optional
}

// SQL renders "term AS alias", or the bare term without an alias.
func (e ExprColumn) SQL() string {
	if e.Alias == "" {
		return e.Term.SQL()
	}
	return e.Term.SQL() + " AS " + e.Alias
}

func (ExprColumn) isSelectExpression() {}

// Columns is a projection list: Star, Selected or Expressions.
// Also used for RETURNING clauses.
type Columns interface {
	SQL() string
	isColumns()
}

// Star selects every column.
type Star struct{}

func (Star) SQL() string { return "*" }
func (Star) isColumns()  {}

// Selected is a list of column names.
type Selected []string

func (s Selected) SQL() string { return strings.Join(s, ", ") }
func (Selected) isColumns()    {}

// Expressions is a list of columns and subqueries.
type Expressions []SelectExpression

// SQL renders the expressions separated by ", ".
func (e Expressions) SQL() string {
	parts := make([]string, len(e))
	for i, x := range e {
		parts[i] = x.SQL()
	}
	return strings.Join(parts, ", ")
}

func (Expressions) isColumns() {}

// Distinct is the optional DISTINCT modifier of a Select.
type Distinct interface {
	SQL() string
	isDistinct()
}

// DistinctAll removes duplicate rows.
type DistinctAll struct{}

func (DistinctAll) SQL() string { return "DISTINCT " }
func (DistinctAll) isDistinct() {}

// DistinctOn keeps the first row of each group of the listed columns.
type DistinctOn []string

func (d DistinctOn) SQL() string { return "DISTINCT ON (" + strings.Join(d, ", ") + ") " }
func (DistinctOn) isDistinct()   {}

// Select is the projection of a Query: the text between SELECT and FROM.
type Select struct {
	Cols     Columns
	Distinct Distinct // optional
}

// NewSelect creates a Select. distinct may be nil.
func NewSelect(cols Columns, distinct Distinct) Select {
	return Select{Cols: cols, Distinct: distinct}
}

// SQL renders the projection without the SELECT keyword.
func (s Select) SQL() string {
	out := ""
	if s.Distinct != nil {
		out = s.Distinct.SQL()
	}
	if s.Cols != nil {
		out += s.Cols.SQL()
	}
	return out
}

// cloneColumns copies the list behind a Selected or Expressions projection.
// Nested subqueries are cloned as well.
func cloneColumns(c Columns) Columns {
	switch v := c.(type) {
	case Selected:
		return Selected(cloneSlice(v))
	case Expressions:
		if v == nil {
			return v
		}
		out := make(Expressions, len(v))
		for i, x := range v {
			if s, ok := x.(SubqueryColumn); ok {
				s.Query = s.Query.clone()
				x = s
			}
			out[i] = x
		}
		return out
	}
	return c
}

func cloneDistinct(d Distinct) Distinct {
	if on, ok := d.(DistinctOn); ok {
		return DistinctOn(cloneSlice(on))
	}
	return d
}
