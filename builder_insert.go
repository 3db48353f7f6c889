package squeal

// InsertBuilder is a fluent builder for INSERT statements.
//
//	ib := squeal.I("users")
//	stmt := ib.Columns("name", "email").
//	    Values(ib.Param(), ib.Param()).
//	    Returning(squeal.Selected{"id"}).
//	    Build()
//
//	stmt.SQL() // INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id
type InsertBuilder struct {
	table      string
	columns    []string
	source     InsertSource
	onConflict OnConflict
	returning  Columns
	params     PgParams
}

// I starts an InsertBuilder for table.
func I(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Param returns the next placeholder of this builder.
func (b *InsertBuilder) Param() string {
	return b.params.Seq()
}

// Columns appends to the column list.
func (b *InsertBuilder) Columns(cols ...string) *InsertBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Values appends one row of values. A previously set SELECT source is
// replaced by the VALUES list.
func (b *InsertBuilder) Values(vals ...string) *InsertBuilder {
	rows, _ := b.source.(Values)
	b.source = append(Values(cloneSlice(rows)), cloneSlice(vals))
	return b
}

// Select uses a query as the data source, replacing any VALUES rows.
func (b *InsertBuilder) Select(q Query) *InsertBuilder {
	b.source = InsertSelect{Query: q}
	return b
}

// OnConflictDoNothing adds ON CONFLICT (cols) DO NOTHING.
func (b *InsertBuilder) OnConflictDoNothing(cols ...string) *InsertBuilder {
	b.onConflict = DoNothing{Columns: cloneSlice(cols)}
	return b
}

// OnConflictDoUpdate adds ON CONFLICT (cols) DO UPDATE SET ....
func (b *InsertBuilder) OnConflictDoUpdate(cols []string, set ...Assignment) *InsertBuilder {
	b.onConflict = DoUpdate{Columns: cloneSlice(cols), Set: cloneSlice(set)}
	return b
}

// Returning sets the RETURNING columns.
func (b *InsertBuilder) Returning(cols Columns) *InsertBuilder {
	b.returning = cloneColumns(cols)
	return b
}

// Build returns a snapshot of the insert. Without a source the statement
// has an empty VALUES list.
func (b *InsertBuilder) Build() Insert {
	var source InsertSource = Values{}
	switch s := b.source.(type) {
	case Values:
		rows := make(Values, len(s))
		for i, row := range s {
			rows[i] = cloneSlice(row)
		}
		source = rows
	case InsertSelect:
		source = InsertSelect{Query: s.Query.clone()}
	}
	return Insert{
		Table:      b.table,
		Columns:    cloneSlice(b.columns),
		Source:     source,
		OnConflict: cloneOnConflict(b.onConflict),
		Returning:  cloneColumns(b.returning),
	}
}
