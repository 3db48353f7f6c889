package squeal

// DeleteBuilder is a fluent builder for DELETE statements.
type DeleteBuilder struct {
	table     string
	where     Term
	returning Columns
	params    PgParams
}

// D starts a DeleteBuilder for table.
func D(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

// Param returns the next placeholder of this builder.
func (b *DeleteBuilder) Param() string {
	return b.params.Seq()
}

// Where sets the WHERE condition.
func (b *DeleteBuilder) Where(t Term) *DeleteBuilder {
	b.where = t
	return b
}

// AndWhere composes t onto the current WHERE condition with AND.
func (b *DeleteBuilder) AndWhere(t Term) *DeleteBuilder {
	b.where = andWhere(b.where, t)
	return b
}

// OrWhere composes t onto the current WHERE condition with OR.
func (b *DeleteBuilder) OrWhere(t Term) *DeleteBuilder {
	b.where = orWhere(b.where, t)
	return b
}

// Returning sets the RETURNING columns.
func (b *DeleteBuilder) Returning(cols Columns) *DeleteBuilder {
	b.returning = cloneColumns(cols)
	return b
}

// Build returns a snapshot of the delete.
func (b *DeleteBuilder) Build() Delete {
	return Delete{Table: b.table, Where: b.where, Returning: cloneColumns(b.returning)}
}
