package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/upside-down-research/squeal"
)

// QueryDoc describes a SELECT. It is the body of a select document and
// of every nested query (CTEs, subqueries, INSERT ... SELECT).
type QueryDoc struct {
	With       []CTEDoc      `json:"with,omitempty"`
	Select     *Projection   `json:"select,omitempty"`
	Distinct   bool          `json:"distinct,omitempty"`
	DistinctOn []string      `json:"distinct_on,omitempty"`
	From       string        `json:"from,omitempty"`
	FromQuery  *AliasedQuery `json:"from_query,omitempty"`
	Joins      []JoinDoc     `json:"joins,omitempty"`
	Where      *Cond         `json:"where,omitempty"`
	GroupBy    []string      `json:"group_by,omitempty"`
	Having     *Cond         `json:"having,omitempty"`
	OrderBy    []OrderDoc    `json:"order_by,omitempty"`
	Limit      *uint64       `json:"limit,omitempty"`
	Offset     *uint64       `json:"offset,omitempty"`
	ForUpdate  bool          `json:"for_update,omitempty"`
}

// CTEDoc is one entry of a WITH list.
type CTEDoc struct {
	Name  string   `json:"name"`
	Query QueryDoc `json:"query"`
}

// AliasedQuery is a derived table.
type AliasedQuery struct {
	Query QueryDoc `json:"query"`
	Alias string   `json:"alias"`
}

// JoinDoc is one JOIN. Exactly one of Table and Query is set.
type JoinDoc struct {
	Type  string        `json:"type,omitempty"` // inner (default), left, right, full, cross
	Table string        `json:"table,omitempty"`
	Query *AliasedQuery `json:"query,omitempty"`
	On    *Cond         `json:"condition,omitempty"` // "on" is a YAML 1.1 boolean
}

var joinTypes = map[string]squeal.JoinType{
	"":      squeal.InnerJoin,
	"inner": squeal.InnerJoin,
	"left":  squeal.LeftJoin,
	"right": squeal.RightJoin,
	"full":  squeal.FullJoin,
	"cross": squeal.CrossJoin,
}

// build replays the document through a QueryBuilder, in clause order so
// that placeholders number the way they read.
func (d *QueryDoc) build(param func() string) (squeal.Query, error) {
	b := squeal.Q()
	if param == nil {
		param = b.Param
	}

	for _, cte := range d.With {
		if cte.Name == "" {
			return squeal.Query{}, fmt.Errorf("%w: cte needs a name", ErrInvalidDocument)
		}
		q, err := cte.Query.build(param)
		if err != nil {
			return squeal.Query{}, fmt.Errorf("cte %s: %w", cte.Name, err)
		}
		b.With(cte.Name, q)
	}

	if d.Select == nil {
		b.SelectStar()
	} else {
		cols, err := d.Select.columns(param)
		if err != nil {
			return squeal.Query{}, err
		}
		switch c := cols.(type) {
		case squeal.Star:
			b.SelectStar()
		case squeal.Selected:
			b.Select(c...)
		case squeal.Expressions:
			b.SelectExpressions(c...)
		}
	}
	switch {
	case d.Distinct && d.DistinctOn != nil:
		return squeal.Query{}, fmt.Errorf("%w: distinct and distinct_on are exclusive", ErrInvalidDocument)
	case d.Distinct:
		b.Distinct()
	case d.DistinctOn != nil:
		b.DistinctOn(d.DistinctOn...)
	}

	switch {
	case d.From != "" && d.FromQuery != nil:
		return squeal.Query{}, fmt.Errorf("%w: from and from_query are exclusive", ErrInvalidDocument)
	case d.From != "":
		b.From(d.From)
	case d.FromQuery != nil:
		q, err := d.FromQuery.Query.build(param)
		if err != nil {
			return squeal.Query{}, err
		}
		b.FromSubquery(q, d.FromQuery.Alias)
	}

	for _, j := range d.Joins {
		if err := j.apply(b, param); err != nil {
			return squeal.Query{}, err
		}
	}

	if d.Where != nil {
		t, err := d.Where.term(param)
		if err != nil {
			return squeal.Query{}, fmt.Errorf("where: %w", err)
		}
		b.Where(t)
	}
	if len(d.GroupBy) > 0 {
		b.GroupBy(d.GroupBy...)
	}
	if d.Having != nil {
		t, err := d.Having.term(param)
		if err != nil {
			return squeal.Query{}, fmt.Errorf("having: %w", err)
		}
		b.Having(t)
	}
	if len(d.OrderBy) > 0 {
		cols := make([]squeal.OrderedColumn, len(d.OrderBy))
		for i, o := range d.OrderBy {
			cols[i] = squeal.OrderedColumn(o)
		}
		b.OrderBy(cols...)
	}
	if d.Limit != nil {
		b.Limit(*d.Limit)
	}
	if d.Offset != nil {
		b.Offset(*d.Offset)
	}
	if d.ForUpdate {
		b.ForUpdate()
	}
	return b.Build(), nil
}

func (j *JoinDoc) apply(b *squeal.QueryBuilder, param func() string) error {
	jt, ok := joinTypes[strings.ToLower(j.Type)]
	if !ok {
		return fmt.Errorf("%w: unknown join type %q", ErrInvalidDocument, j.Type)
	}

	var source squeal.FromSource
	switch {
	case j.Table != "" && j.Query != nil:
		return fmt.Errorf("%w: join table and query are exclusive", ErrInvalidDocument)
	case j.Table != "":
		source = squeal.Table(j.Table)
	case j.Query != nil:
		q, err := j.Query.Query.build(param)
		if err != nil {
			return err
		}
		source = squeal.FromSubquery{Query: q, Alias: j.Query.Alias}
	default:
		return fmt.Errorf("%w: join needs a table or query", ErrInvalidDocument)
	}

	var on squeal.Term
	if j.On != nil {
		t, err := j.On.term(param)
		if err != nil {
			return fmt.Errorf("join on: %w", err)
		}
		on = t
	}
	b.Join(jt, source, on)
	return nil
}

// OrderDoc is an ORDER BY entry, written "column" or "column desc".
type OrderDoc squeal.OrderedColumn

// UnmarshalJSON parses "col", "col asc" or "col desc".
func (o *OrderDoc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: order_by entries are strings", ErrInvalidDocument)
	}
	s = strings.TrimSpace(s)
	col, dir := s, squeal.Ascending
	if i := strings.LastIndexByte(s, ' '); i > 0 {
		switch strings.ToUpper(s[i+1:]) {
		case "ASC":
			col = strings.TrimSpace(s[:i])
		case "DESC":
			col, dir = strings.TrimSpace(s[:i]), squeal.Descending
		}
	}
	if col == "" {
		return fmt.Errorf("%w: empty order_by entry", ErrInvalidDocument)
	}
	*o = OrderDoc{Column: col, Direction: dir}
	return nil
}

// Projection is a select list or RETURNING list: "*" or a list whose items
// are column names or {expr|query, alias} objects.
type Projection struct {
	Star  bool
	Items []SelectItem
}

// SelectItem is one entry of a Projection.
type SelectItem struct {
	Column string    `json:"-"`
	Expr   *Cond     `json:"expr,omitempty"`
	Query  *QueryDoc `json:"query,omitempty"`
	Alias  string    `json:"alias,omitempty"`
}

// UnmarshalJSON accepts "*", a single column name, or a list.
func (p *Projection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "*" {
			*p = Projection{Star: true}
		} else {
			*p = Projection{Items: []SelectItem{{Column: s}}}
		}
		return nil
	}

	var items []SelectItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: select: %v", ErrInvalidDocument, err)
	}
	*p = Projection{Items: items}
	return nil
}

// UnmarshalJSON accepts a column name or an object.
func (s *SelectItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var col string
		if err := json.Unmarshal(data, &col); err != nil {
			return err
		}
		*s = SelectItem{Column: col}
		return nil
	}

	type plain SelectItem
	var p plain
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%w: select item: %v", ErrInvalidDocument, err)
	}
	*s = SelectItem(p)
	return nil
}

// columns converts the projection. Plain column lists become Selected;
// anything with expressions becomes Expressions.
func (p *Projection) columns(param func() string) (squeal.Columns, error) {
	if p.Star {
		return squeal.Star{}, nil
	}

	plainOnly := true
	for _, it := range p.Items {
		if it.Column == "" {
			plainOnly = false
			break
		}
	}
	if plainOnly {
		cols := make(squeal.Selected, len(p.Items))
		for i, it := range p.Items {
			cols[i] = it.Column
		}
		return cols, nil
	}

	exprs := make(squeal.Expressions, len(p.Items))
	for i, it := range p.Items {
		switch {
		case it.Column != "":
			exprs[i] = squeal.Column(it.Column)
		case it.Expr != nil && it.Query == nil:
			t, err := it.Expr.term(param)
			if err != nil {
				return nil, err
			}
			exprs[i] = squeal.ExprColumn{Term: t, Alias: it.Alias}
		case it.Query != nil && it.Expr == nil:
			q, err := it.Query.build(param)
			if err != nil {
				return nil, err
			}
			exprs[i] = squeal.SubqueryColumn{Query: q, Alias: it.Alias}
		default:
			return nil, fmt.Errorf("%w: select item needs exactly one of expr or query", ErrInvalidDocument)
		}
	}
	return exprs, nil
}
