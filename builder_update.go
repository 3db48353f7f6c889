package squeal

// UpdateBuilder is a fluent builder for UPDATE statements.
// See the U function.
type UpdateBuilder struct {
	table     string
	columns   []string
	values    []string
	from      string
	where     Term
	returning Columns
	params    PgParams
}

// U starts an UpdateBuilder for table.
//
//	ub := squeal.U("users")
//	stmt := ub.Set(squeal.Assign("name", ub.Param())).
//	    Where(squeal.Eq("id", ub.Param())).
//	    Build()
//
//	stmt.SQL() // UPDATE users SET name = $1 WHERE id = $2
func U(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Param returns the next placeholder of this builder.
func (b *UpdateBuilder) Param() string {
	return b.params.Seq()
}

// Set appends column/value pairs. Prefer it over Columns and Values, which
// can drift out of step.
func (b *UpdateBuilder) Set(assignments ...Assignment) *UpdateBuilder {
	for _, a := range assignments {
		b.columns = append(b.columns, a.Column)
		b.values = append(b.values, a.Value)
	}
	return b
}

// Columns appends to the column list. Use with Values.
func (b *UpdateBuilder) Columns(cols ...string) *UpdateBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Values appends to the value list. Use with Columns.
func (b *UpdateBuilder) Values(vals ...string) *UpdateBuilder {
	b.values = append(b.values, vals...)
	return b
}

// From sets the UPDATE ... FROM table.
func (b *UpdateBuilder) From(table string) *UpdateBuilder {
	b.from = table
	return b
}

// Where sets the WHERE condition.
func (b *UpdateBuilder) Where(t Term) *UpdateBuilder {
	b.where = t
	return b
}

// AndWhere composes t onto the current WHERE condition with AND.
func (b *UpdateBuilder) AndWhere(t Term) *UpdateBuilder {
	b.where = andWhere(b.where, t)
	return b
}

// OrWhere composes t onto the current WHERE condition with OR.
func (b *UpdateBuilder) OrWhere(t Term) *UpdateBuilder {
	b.where = orWhere(b.where, t)
	return b
}

// Returning sets the RETURNING columns.
func (b *UpdateBuilder) Returning(cols Columns) *UpdateBuilder {
	b.returning = cloneColumns(cols)
	return b
}

// Build returns a snapshot of the update.
func (b *UpdateBuilder) Build() Update {
	return Update{
		Table:     b.table,
		Columns:   cloneSlice(b.columns),
		Values:    cloneSlice(b.values),
		From:      b.from,
		Where:     b.where,
		Returning: cloneColumns(b.returning),
	}
}
