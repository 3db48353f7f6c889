package document

import (
	"fmt"
	"strings"

	"github.com/upside-down-research/squeal"
)

func (d *Document) requireTable() error {
	if d.Table == "" {
		return fmt.Errorf("%w: %s needs a table", ErrInvalidDocument, d.Kind)
	}
	return nil
}

func (d *Document) buildInsert() (squeal.Insert, error) {
	if err := d.requireTable(); err != nil {
		return squeal.Insert{}, err
	}
	if d.Values != nil && d.Query != nil {
		return squeal.Insert{}, fmt.Errorf("%w: values and query are exclusive", ErrInvalidDocument)
	}

	b := squeal.I(d.Table).Columns(d.Columns...)
	for i, row := range d.Values {
		vals := make([]string, len(row))
		for j := range row {
			v, err := sqlText(&row[j], b.Param)
			if err != nil {
				return squeal.Insert{}, fmt.Errorf("values row %d: %w", i+1, err)
			}
			vals[j] = v
		}
		b.Values(vals...)
	}
	if d.Query != nil {
		q, err := d.Query.build(b.Param)
		if err != nil {
			return squeal.Insert{}, fmt.Errorf("query: %w", err)
		}
		b.Select(q)
	}

	if c := d.OnConflict; c != nil {
		switch strings.ToLower(c.Action) {
		case "nothing":
			b.OnConflictDoNothing(c.Columns...)
		case "update":
			set, err := assignments(c.Set, b.Param)
			if err != nil {
				return squeal.Insert{}, fmt.Errorf("on_conflict: %w", err)
			}
			b.OnConflictDoUpdate(c.Columns, set...)
		default:
			return squeal.Insert{}, fmt.Errorf("%w: on_conflict action %q (want nothing or update)", ErrInvalidDocument, c.Action)
		}
	}

	if d.Returning != nil {
		cols, err := d.Returning.columns(b.Param)
		if err != nil {
			return squeal.Insert{}, fmt.Errorf("returning: %w", err)
		}
		b.Returning(cols)
	}
	return b.Build(), nil
}

func (d *Document) buildUpdate() (squeal.Update, error) {
	if err := d.requireTable(); err != nil {
		return squeal.Update{}, err
	}
	if len(d.Set) == 0 {
		return squeal.Update{}, fmt.Errorf("%w: update needs set", ErrInvalidDocument)
	}

	b := squeal.U(d.Table)
	set, err := assignments(d.Set, b.Param)
	if err != nil {
		return squeal.Update{}, fmt.Errorf("set: %w", err)
	}
	b.Set(set...)
	if d.From != "" {
		b.From(d.From)
	}
	if d.Where != nil {
		t, err := d.Where.term(b.Param)
		if err != nil {
			return squeal.Update{}, fmt.Errorf("where: %w", err)
		}
		b.Where(t)
	}
	if d.Returning != nil {
		cols, err := d.Returning.columns(b.Param)
		if err != nil {
			return squeal.Update{}, fmt.Errorf("returning: %w", err)
		}
		b.Returning(cols)
	}
	return b.Build(), nil
}

func (d *Document) buildDelete() (squeal.Delete, error) {
	if err := d.requireTable(); err != nil {
		return squeal.Delete{}, err
	}

	b := squeal.D(d.Table)
	if d.Where != nil {
		t, err := d.Where.term(b.Param)
		if err != nil {
			return squeal.Delete{}, fmt.Errorf("where: %w", err)
		}
		b.Where(t)
	}
	if d.Returning != nil {
		cols, err := d.Returning.columns(b.Param)
		if err != nil {
			return squeal.Delete{}, fmt.Errorf("returning: %w", err)
		}
		b.Returning(cols)
	}
	return b.Build(), nil
}

func (d *Document) buildCreateTable() (squeal.CreateTable, error) {
	if err := d.requireTable(); err != nil {
		return squeal.CreateTable{}, err
	}

	b := squeal.T(d.Table)
	for _, c := range d.Definition {
		if c.Name == "" || c.Type == "" {
			return squeal.CreateTable{}, fmt.Errorf("%w: column needs name and type", ErrInvalidDocument)
		}
		b.Column(c.Name, c.Type, c.Modifiers...)
	}
	if d.IfNotExists {
		b.IfNotExists()
	}
	return b.BuildCreateTable(), nil
}

func (d *Document) buildDropTable() (squeal.DropTable, error) {
	if err := d.requireTable(); err != nil {
		return squeal.DropTable{}, err
	}

	b := squeal.T(d.Table)
	if d.IfExists {
		b.IfExists()
	}
	return b.BuildDropTable(), nil
}

func assignments(set []SetDoc, param func() string) ([]squeal.Assignment, error) {
	out := make([]squeal.Assignment, len(set))
	for i := range set {
		if set[i].Column == "" {
			return nil, fmt.Errorf("%w: assignment needs a column", ErrInvalidDocument)
		}
		v, err := sqlText(&set[i].Value, param)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", set[i].Column, err)
		}
		out[i] = squeal.Assign(set[i].Column, v)
	}
	return out, nil
}
