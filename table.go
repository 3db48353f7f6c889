package squeal

import "strings"

// CreateTable is a CREATE TABLE statement. Each column is a complete,
// syntactically valid definition fragment such as "id serial PRIMARY KEY".
type CreateTable struct {
	Table       string
	Columns     []string
	IfNotExists bool
}

// SQL renders the statement.
func (c CreateTable) SQL() string {
	head := "CREATE TABLE "
	if c.IfNotExists {
		head += "IF NOT EXISTS "
	}
	return head + c.Table + " (" + strings.Join(c.Columns, ", ") + ")"
}

// DropTable is a DROP TABLE statement.
type DropTable struct {
	Table    string
	IfExists bool
}

// SQL renders the statement.
func (d DropTable) SQL() string {
	if d.IfExists {
		return "DROP TABLE IF EXISTS " + d.Table
	}
	return "DROP TABLE " + d.Table
}

// TableBuilder accumulates a table definition that can be built into its
// CREATE or DROP form.
type TableBuilder struct {
	table       string
	columns     [][]string
	ifNotExists bool
	ifExists    bool
}

// T starts a TableBuilder for the named table.
func T(table string) *TableBuilder {
	return &TableBuilder{table: table}
}

// Table changes the table name.
func (b *TableBuilder) Table(name string) *TableBuilder {
	b.table = name
	return b
}

// Column adds a column definition. The name, type and modifiers are joined
// with single spaces: Column("id", "serial", "PRIMARY KEY").
func (b *TableBuilder) Column(name, datatype string, modifiers ...string) *TableBuilder {
	def := append([]string{name, datatype}, modifiers...)
	b.columns = append(b.columns, def)
	return b
}

// IfNotExists makes the CREATE form tolerate an existing table.
func (b *TableBuilder) IfNotExists() *TableBuilder {
	b.ifNotExists = true
	return b
}

// IfExists makes the DROP form tolerate a missing table.
func (b *TableBuilder) IfExists() *TableBuilder {
	b.ifExists = true
	return b
}

// BuildCreateTable returns the CREATE TABLE statement.
func (b *TableBuilder) BuildCreateTable() CreateTable {
	cols := make([]string, len(b.columns))
	for i, c := range b.columns {
		cols[i] = strings.Join(c, " ")
	}
	return CreateTable{Table: b.table, Columns: cols, IfNotExists: b.ifNotExists}
}

// BuildDropTable returns the DROP TABLE statement.
func (b *TableBuilder) BuildDropTable() DropTable {
	return DropTable{Table: b.table, IfExists: b.ifExists}
}
