// Package document decodes YAML statement documents and replays them
// through the squeal builders.
//
// A document names its kind and carries the fields of that statement:
//
//	kind: select
//	select: [id, email]
//	from: users
//	where: {left: id, op: "=", right: {param: true}}
//	order_by: ["created_at desc"]
//	limit: 10
//
// A file holds one document, or several under a top-level statements key.
// Placeholders ({param: true}) are numbered $1, $2, ... in the order they
// appear in the rendered statement.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/upside-down-research/squeal"
)

// Statement kinds.
const (
	KindSelect      = "select"
	KindInsert      = "insert"
	KindUpdate      = "update"
	KindDelete      = "delete"
	KindCreateTable = "create_table"
	KindDropTable   = "drop_table"
)

// ErrInvalidDocument is returned for documents that cannot be built.
var ErrInvalidDocument = errors.New("document: invalid statement document")

// Document is one statement. Kind selects which of the remaining fields
// apply; the select fields are embedded, and update and delete reuse
// from and where from them.
type Document struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`

	QueryDoc

	Table       string       `json:"table,omitempty"`
	Columns     []string     `json:"columns,omitempty"`
	Values      [][]Cond     `json:"values,omitempty"`
	Query       *QueryDoc    `json:"query,omitempty"`
	OnConflict  *ConflictDoc `json:"on_conflict,omitempty"`
	Set         []SetDoc     `json:"set,omitempty"`
	Returning   *Projection  `json:"returning,omitempty"`
	Definition  []ColumnDoc  `json:"definition,omitempty"`
	IfNotExists bool         `json:"if_not_exists,omitempty"`
	IfExists    bool         `json:"if_exists,omitempty"`
}

// ConflictDoc is an ON CONFLICT clause. Action is "nothing" or "update".
type ConflictDoc struct {
	Columns []string `json:"columns,omitempty"`
	Action  string   `json:"action"`
	Set     []SetDoc `json:"set,omitempty"`
}

// SetDoc is one column = value assignment.
type SetDoc struct {
	Column string `json:"column"`
	Value  Cond   `json:"value"`
}

// ColumnDoc is one column of a CREATE TABLE.
type ColumnDoc struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// Parse decodes one document, or a list under a top-level statements key.
// Unknown fields are rejected.
func Parse(data []byte) ([]Document, error) {
	var multi struct {
		Statements []Document `json:"statements"`
	}
	if err := yaml.Unmarshal(data, &multi); err == nil && len(multi.Statements) > 0 {
		if err := yaml.UnmarshalStrict(data, &multi); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return multi.Statements, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return []Document{doc}, nil
}

// ParseFile reads and parses path.
func ParseFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	docs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Build replays the document through the matching builder.
func (d *Document) Build() (squeal.Statement, error) {
	var (
		stmt squeal.Statement
		err  error
	)
	switch d.Kind {
	case KindSelect:
		stmt, err = d.QueryDoc.build(nil)
	case KindInsert:
		stmt, err = d.buildInsert()
	case KindUpdate:
		stmt, err = d.buildUpdate()
	case KindDelete:
		stmt, err = d.buildDelete()
	case KindCreateTable:
		stmt, err = d.buildCreateTable()
	case KindDropTable:
		stmt, err = d.buildDropTable()
	case "":
		err = fmt.Errorf("%w: missing kind", ErrInvalidDocument)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalidDocument, d.Kind)
	}
	if err != nil {
		if d.Name != "" {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		return nil, err
	}
	return stmt, nil
}
