package squeal

// QueryBuilder is a fluent builder for SELECT statements.
//
// Setters return the receiver so calls chain. Setting a clause twice
// replaces it; With, the join methods and AndWhere/OrWhere accumulate.
//
//	q := squeal.Q()
//	stmt := q.Select("id", "name").
//	    From("users").
//	    Where(squeal.Eq("id", q.Param())).
//	    Build()
//
//	stmt.SQL() // SELECT id, name FROM users WHERE id = $1
type QueryBuilder struct {
	query  Query
	params PgParams
}

// Q starts an empty QueryBuilder.
func Q() *QueryBuilder {
	return &QueryBuilder{}
}

// Param returns the next placeholder of this builder.
func (b *QueryBuilder) Param() string {
	return b.params.Seq()
}

// With adds a named CTE. CTEs render in the order they are added.
func (b *QueryBuilder) With(name string, q Query) *QueryBuilder {
	b.query.With = append(b.query.With, Cte{Name: name, Query: q})
	return b
}

// Select sets the projection to the given columns, keeping any DISTINCT modifier.
func (b *QueryBuilder) Select(cols ...string) *QueryBuilder {
	return b.setColumns(Selected(cloneSlice(cols)))
}

// SelectStar sets the projection to *.
func (b *QueryBuilder) SelectStar() *QueryBuilder {
	return b.setColumns(Star{})
}

// SelectExpressions sets the projection to a mix of columns, terms and subqueries.
func (b *QueryBuilder) SelectExpressions(exprs ...SelectExpression) *QueryBuilder {
	return b.setColumns(Expressions(cloneSlice(exprs)))
}

// Distinct adds DISTINCT to the projection.
func (b *QueryBuilder) Distinct() *QueryBuilder {
	return b.setDistinct(DistinctAll{})
}

// DistinctOn adds DISTINCT ON (cols) to the projection.
func (b *QueryBuilder) DistinctOn(cols ...string) *QueryBuilder {
	return b.setDistinct(DistinctOn(cloneSlice(cols)))
}

func (b *QueryBuilder) setColumns(cols Columns) *QueryBuilder {
	var distinct Distinct
	if b.query.Select != nil {
		distinct = b.query.Select.Distinct
	}
	b.query.Select = &Select{Cols: cols, Distinct: distinct}
	return b
}

func (b *QueryBuilder) setDistinct(d Distinct) *QueryBuilder {
	var cols Columns
	if b.query.Select != nil {
		cols = b.query.Select.Cols
	}
	b.query.Select = &Select{Cols: cols, Distinct: d}
	return b
}

// From sets the FROM table.
func (b *QueryBuilder) From(table string) *QueryBuilder {
	b.query.From = Table(table)
	return b
}

// FromSubquery sets FROM to a derived table.
func (b *QueryBuilder) FromSubquery(q Query, alias string) *QueryBuilder {
	b.query.From = FromSubquery{Query: q, Alias: alias}
	return b
}

// Join appends a join on an arbitrary source. on is ignored for cross joins.
func (b *QueryBuilder) Join(joinType JoinType, source FromSource, on Term) *QueryBuilder {
	if joinType == CrossJoin {
		on = nil
	}
	b.query.Joins = append(b.query.Joins, Join{Type: joinType, Source: source, On: on})
	return b
}

// InnerJoin appends an INNER JOIN on table.
func (b *QueryBuilder) InnerJoin(table string, on Term) *QueryBuilder {
	return b.Join(InnerJoin, Table(table), on)
}

// LeftJoin appends a LEFT JOIN on table.
func (b *QueryBuilder) LeftJoin(table string, on Term) *QueryBuilder {
	return b.Join(LeftJoin, Table(table), on)
}

// RightJoin appends a RIGHT JOIN on table.
func (b *QueryBuilder) RightJoin(table string, on Term) *QueryBuilder {
	return b.Join(RightJoin, Table(table), on)
}

// FullJoin appends a FULL JOIN on table.
func (b *QueryBuilder) FullJoin(table string, on Term) *QueryBuilder {
	return b.Join(FullJoin, Table(table), on)
}

// CrossJoin appends a CROSS JOIN on table.
func (b *QueryBuilder) CrossJoin(table string) *QueryBuilder {
	return b.Join(CrossJoin, Table(table), nil)
}

// Where sets the WHERE condition, replacing any previous one.
func (b *QueryBuilder) Where(t Term) *QueryBuilder {
	b.query.Where = t
	return b
}

// AndWhere composes t onto the current WHERE condition with AND.
// Without a current condition it behaves like Where.
func (b *QueryBuilder) AndWhere(t Term) *QueryBuilder {
	b.query.Where = andWhere(b.query.Where, t)
	return b
}

// OrWhere composes t onto the current WHERE condition with OR.
func (b *QueryBuilder) OrWhere(t Term) *QueryBuilder {
	b.query.Where = orWhere(b.query.Where, t)
	return b
}

// GroupBy sets the GROUP BY columns.
func (b *QueryBuilder) GroupBy(cols ...string) *QueryBuilder {
	b.query.GroupBy = cloneSlice(cols)
	return b
}

// Having sets the HAVING condition.
func (b *QueryBuilder) Having(t Term) *QueryBuilder {
	b.query.Having = &Having{Term: t}
	return b
}

// OrderBy sets the ORDER BY columns.
func (b *QueryBuilder) OrderBy(cols ...OrderedColumn) *QueryBuilder {
	b.query.OrderBy = &OrderBy{Columns: cloneSlice(cols)}
	return b
}

// Limit sets the LIMIT.
func (b *QueryBuilder) Limit(n uint64) *QueryBuilder {
	b.query.Limit = Ptr(n)
	return b
}

// Offset sets the OFFSET.
func (b *QueryBuilder) Offset(n uint64) *QueryBuilder {
	b.query.Offset = Ptr(n)
	return b
}

// ForUpdate adds FOR UPDATE row locking.
func (b *QueryBuilder) ForUpdate() *QueryBuilder {
	b.query.ForUpdate = true
	return b
}

// Build returns a snapshot of the query. Later calls on the builder do not
// affect the returned value.
func (b *QueryBuilder) Build() Query {
	return b.query.clone()
}
