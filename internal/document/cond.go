package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/upside-down-research/squeal"
)

// Cond is a term in a statement document. A bare scalar is an atom:
//
//	where: "deleted_at IS NULL"
//
// An object selects exactly one form:
//
//	where:
//	  and:
//	    - {left: tenant_id, op: "=", right: {param: true}}
//	    - parens:
//	        or: [archived, {not: visible}]
type Cond struct {
	Atom      string    `json:"-"`
	Left      *Cond     `json:"left,omitempty"`
	Op        string    `json:"op,omitempty"`
	Right     *Cond     `json:"right,omitempty"`
	And       []Cond    `json:"and,omitempty"`
	Or        []Cond    `json:"or,omitempty"`
	Not       *Cond     `json:"not,omitempty"`
	Parens    *Cond     `json:"parens,omitempty"`
	List      []Cond    `json:"list,omitempty"`
	Subquery  *QueryDoc `json:"subquery,omitempty"`
	Exists    *QueryDoc `json:"exists,omitempty"`
	NotExists *QueryDoc `json:"not_exists,omitempty"`
	IsNull    *Cond     `json:"is_null,omitempty"`
	IsNotNull *Cond     `json:"is_not_null,omitempty"`
	Param     bool      `json:"param,omitempty"`

	isAtom bool
}

// A is shorthand for an atom Cond.
func A(text string) Cond {
	return Cond{Atom: text, isAtom: true}
}

// UnmarshalJSON accepts a scalar (string, number, bool or null) as an atom
// and an object as one of the structured forms.
func (c *Cond) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty term", ErrInvalidDocument)
	}

	switch data[0] {
	case '{':
		type plain Cond
		var p plain
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("%w: term: %v", ErrInvalidDocument, err)
		}
		*c = Cond(p)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = A(s)
		return nil
	case '[':
		return fmt.Errorf("%w: term cannot be a list (use list: [...])", ErrInvalidDocument)
	default:
		// numbers, true, false, null
		text := string(data)
		if text == "null" {
			text = "NULL"
		}
		*c = A(text)
		return nil
	}
}

// MarshalJSON writes atoms back as scalars.
func (c Cond) MarshalJSON() ([]byte, error) {
	if c.isAtom {
		return json.Marshal(c.Atom)
	}
	type plain Cond
	return json.Marshal(plain(c))
}

var opAliases = map[string]squeal.Op{
	"and":        squeal.OpAnd,
	"or":         squeal.OpOr,
	"eq":         squeal.OpEquals,
	"ne":         squeal.OpNotEquals,
	"gt":         squeal.OpGreaterThan,
	"lt":         squeal.OpLessThan,
	"gte":        squeal.OpGreaterOrEqual,
	"lte":        squeal.OpLessOrEqual,
	"like":       squeal.OpLike,
	"in":         squeal.OpIn,
	"exists":     squeal.OpExists,
	"not_exists": squeal.OpNotExists,
	"any":        squeal.OpAny,
	"all":        squeal.OpAll,
}

// parseOp maps lower-case aliases onto the operator table and passes
// anything else through verbatim.
func parseOp(s string) squeal.Op {
	if op, ok := opAliases[strings.ToLower(s)]; ok {
		return op
	}
	return squeal.Custom(s)
}

func (c *Cond) forms() int {
	n := 0
	for _, set := range []bool{
		c.isAtom,
		c.Left != nil || c.Op != "" || c.Right != nil,
		c.And != nil,
		c.Or != nil,
		c.Not != nil,
		c.Parens != nil,
		c.List != nil,
		c.Subquery != nil,
		c.Exists != nil,
		c.NotExists != nil,
		c.IsNull != nil,
		c.IsNotNull != nil,
		c.Param,
	} {
		if set {
			n++
		}
	}
	return n
}

// term converts the Cond to a squeal term. Placeholders are drawn from
// param in document order.
func (c *Cond) term(param func() string) (squeal.Term, error) {
	switch n := c.forms(); {
	case n == 0:
		return nil, fmt.Errorf("%w: term has no form", ErrInvalidDocument)
	case n > 1:
		return nil, fmt.Errorf("%w: term mixes %d forms", ErrInvalidDocument, n)
	}

	switch {
	case c.isAtom:
		return squeal.Atom(c.Atom), nil
	case c.Param:
		return squeal.Atom(param()), nil
	case c.Left != nil || c.Op != "" || c.Right != nil:
		if c.Left == nil || c.Op == "" || c.Right == nil {
			return nil, fmt.Errorf("%w: condition needs left, op and right", ErrInvalidDocument)
		}
		l, err := c.Left.term(param)
		if err != nil {
			return nil, err
		}
		r, err := c.Right.term(param)
		if err != nil {
			return nil, err
		}
		return squeal.Cond(l, parseOp(c.Op), r), nil
	case c.And != nil:
		return chain(c.And, squeal.And, param)
	case c.Or != nil:
		return chain(c.Or, squeal.Or, param)
	case c.Not != nil:
		t, err := c.Not.term(param)
		if err != nil {
			return nil, err
		}
		return squeal.Not(t), nil
	case c.Parens != nil:
		t, err := c.Parens.term(param)
		if err != nil {
			return nil, err
		}
		return squeal.Paren(t), nil
	case c.List != nil:
		terms, err := termList(c.List, param)
		if err != nil {
			return nil, err
		}
		return squeal.List{Terms: terms}, nil
	case c.Subquery != nil:
		q, err := c.Subquery.build(param)
		if err != nil {
			return nil, err
		}
		return squeal.Subquery{Query: q}, nil
	case c.Exists != nil:
		q, err := c.Exists.build(param)
		if err != nil {
			return nil, err
		}
		return squeal.Exists(q), nil
	case c.NotExists != nil:
		q, err := c.NotExists.build(param)
		if err != nil {
			return nil, err
		}
		return squeal.NotExists(q), nil
	case c.IsNull != nil:
		t, err := c.IsNull.term(param)
		if err != nil {
			return nil, err
		}
		return squeal.IsNull(t), nil
	default:
		t, err := c.IsNotNull.term(param)
		if err != nil {
			return nil, err
		}
		return squeal.IsNotNull(t), nil
	}
}

// chain joins terms left to right with join, without parentheses.
func chain(conds []Cond, join func(l, r squeal.Term) squeal.Condition, param func() string) (squeal.Term, error) {
	if len(conds) == 0 {
		return nil, fmt.Errorf("%w: and/or needs at least one term", ErrInvalidDocument)
	}
	terms, err := termList(conds, param)
	if err != nil {
		return nil, err
	}
	out := terms[0]
	for _, t := range terms[1:] {
		out = join(out, t)
	}
	return out, nil
}

func termList(conds []Cond, param func() string) ([]squeal.Term, error) {
	terms := make([]squeal.Term, len(conds))
	for i := range conds {
		t, err := conds[i].term(param)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

// sqlText renders an optional term to text, as used for VALUES and SET.
func sqlText(c *Cond, param func() string) (string, error) {
	t, err := c.term(param)
	if err != nil {
		return "", err
	}
	return t.SQL(), nil
}
