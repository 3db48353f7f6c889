package squeal

import (
	"strconv"
	"strings"
)

// Query is a SELECT statement.
//
// Every field is optional. Present clauses are emitted in a fixed order
// regardless of how the value was assembled:
//
//	WITH, SELECT, FROM, JOIN..., WHERE, GROUP BY, HAVING, ORDER BY, LIMIT, OFFSET, FOR UPDATE
//
// Clauses after SELECT carry their own leading space, so a Query without a
// Select renders with a leading space (Query{ForUpdate: true} is " FOR UPDATE").
// Well-formedness is the caller's responsibility.
type Query struct {
	With      []Cte
	Select    *Select
	From      FromSource
	Joins     []Join
	Where     Term
	GroupBy   []string
	Having    *Having
	OrderBy   *OrderBy
	Limit     *uint64
	Offset    *uint64
	ForUpdate bool
}

// SQL renders the query.
func (q Query) SQL() string {
	var sb strings.Builder
	if len(q.With) > 0 {
		ctes := make([]string, len(q.With))
		for i, c := range q.With {
			ctes[i] = c.SQL()
		}
		sb.WriteString("WITH ")
		sb.WriteString(strings.Join(ctes, ", "))
		sb.WriteString(" ")
	}
	if q.Select != nil {
		sb.WriteString("SELECT ")
		sb.WriteString(q.Select.SQL())
	}
	if q.From != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(q.From.SQL())
	}
	for _, j := range q.Joins {
		sb.WriteString(" ")
		sb.WriteString(j.SQL())
	}
	if q.Where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.Where.SQL())
	}
	if len(q.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(q.GroupBy, ", "))
	}
	if q.Having != nil {
		sb.WriteString(" ")
		sb.WriteString(q.Having.SQL())
	}
	if q.OrderBy != nil {
		sb.WriteString(" ")
		sb.WriteString(q.OrderBy.SQL())
	}
	if q.Limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(*q.Limit, 10))
	}
	if q.Offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.FormatUint(*q.Offset, 10))
	}
	if q.ForUpdate {
		sb.WriteString(" FOR UPDATE")
	}
	return sb.String()
}

// clone returns a copy of q whose slices, pointed-to clauses and nested
// queries are not shared with q. Terms are immutable and are shared.
func (q Query) clone() Query {
	out := q
	if q.With != nil {
		out.With = make([]Cte, len(q.With))
		for i, c := range q.With {
			out.With[i] = Cte{Name: c.Name, Query: c.Query.clone()}
		}
	}
	out.From = cloneFromSource(q.From)
	if q.Joins != nil {
		out.Joins = make([]Join, len(q.Joins))
		for i, j := range q.Joins {
			j.Source = cloneFromSource(j.Source)
			out.Joins[i] = j
		}
	}
	out.GroupBy = cloneSlice(q.GroupBy)
	if q.Select != nil {
		s := Select{Cols: cloneColumns(q.Select.Cols), Distinct: cloneDistinct(q.Select.Distinct)}
		out.Select = &s
	}
	if q.Having != nil {
		h := *q.Having
		out.Having = &h
	}
	if q.OrderBy != nil {
		o := OrderBy{Columns: cloneSlice(q.OrderBy.Columns)}
		out.OrderBy = &o
	}
	if q.Limit != nil {
		out.Limit = Ptr(*q.Limit)
	}
	if q.Offset != nil {
		out.Offset = Ptr(*q.Offset)
	}
	return out
}

// cloneSlice copies s, preserving nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
