package squeal

import "strings"

// InsertSource is the data of an INSERT: Values or InsertSelect.
type InsertSource interface {
	SQL() string
	isInsertSource()
}

// Values is a list of literal rows. Each row is expected, but not required,
// to match the column list of the Insert.
type Values [][]string

// SQL renders "VALUES (a, b), (c, d)".
func (v Values) SQL() string {
	rows := make([]string, len(v))
	for i, row := range v {
		rows[i] = "(" + strings.Join(row, ", ") + ")"
	}
	return "VALUES " + strings.Join(rows, ", ")
}

func (Values) isInsertSource() {}

// InsertSelect inserts the rows produced by a query.
type InsertSelect struct {
	Query Query
}

func (i InsertSelect) SQL() string   { return i.Query.SQL() }
func (InsertSelect) isInsertSource() {}

// Assignment is a "column = value" pair of an UPDATE or DO UPDATE clause.
type Assignment struct {
	Column string
	Value  string
}

// Assign creates an Assignment.
func Assign(column, value string) Assignment {
	return Assignment{Column: column, Value: value}
}

// SQL renders "column = value".
func (a Assignment) SQL() string {
	return a.Column + " = " + a.Value
}

// OnConflict is the conflict action of an INSERT: DoNothing or DoUpdate.
type OnConflict interface {
	SQL() string
	isOnConflict()
}

// DoNothing skips rows that conflict on Columns.
type DoNothing struct {
	Columns []string
}

// SQL renders "ON CONFLICT (cols) DO NOTHING".
func (d DoNothing) SQL() string {
	return conflictTarget(d.Columns) + "DO NOTHING"
}

func (DoNothing) isOnConflict() {}

// DoUpdate updates rows that conflict on Columns.
type DoUpdate struct {
	Columns []string
	Set     []Assignment
}

// SQL renders "ON CONFLICT (cols) DO UPDATE SET a = x, b = y".
func (d DoUpdate) SQL() string {
	sets := make([]string, len(d.Set))
	for i, a := range d.Set {
		sets[i] = a.SQL()
	}
	return conflictTarget(d.Columns) + "DO UPDATE SET " + strings.Join(sets, ", ")
}

func (DoUpdate) isOnConflict() {}

// conflictTarget renders the ON CONFLICT prefix. Without columns the
// target is omitted, which PostgreSQL accepts for DO NOTHING.
func conflictTarget(cols []string) string {
	if len(cols) == 0 {
		return "ON CONFLICT "
	}
	return "ON CONFLICT (" + strings.Join(cols, ", ") + ") "
}

// Insert is an INSERT statement.
//
// Values are not escaped. When using placeholders, pass the values to the
// driver at the call site.
type Insert struct {
	Table      string
	Columns    []string
	Source     InsertSource
	OnConflict OnConflict // optional
	Returning  Columns    // optional
}

// SQL renders the insert.
func (i Insert) SQL() string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(i.Table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(i.Columns, ", "))
	sb.WriteString(") ")
	source := i.Source
	if source == nil {
		source = Values(nil)
	}
	sb.WriteString(source.SQL())
	if i.OnConflict != nil {
		sb.WriteString(" ")
		sb.WriteString(i.OnConflict.SQL())
	}
	if i.Returning != nil {
		sb.WriteString(" RETURNING ")
		sb.WriteString(i.Returning.SQL())
	}
	return sb.String()
}

func cloneOnConflict(c OnConflict) OnConflict {
	switch v := c.(type) {
	case DoNothing:
		return DoNothing{Columns: cloneSlice(v.Columns)}
	case DoUpdate:
		return DoUpdate{Columns: cloneSlice(v.Columns), Set: cloneSlice(v.Set)}
	}
	return c
}
