package squeal

import "strings"

// Term is the interface implemented by every scalar expression node.
// SQL must be pure: rendering the same tree twice yields the same text.
type Term interface {
	SQL() string
}

// Atom is a leaf holding a column name, literal or placeholder already in
// its final textual form. It is emitted verbatim, never quoted or escaped.
type Atom string

// SQL renders the atom as-is.
func (a Atom) SQL() string {
	return string(a)
}

// Condition is a binary infix expression (left op right).
//
// Nested conditions are never parenthesized automatically:
//
//	And(Eq("a", "b"), Or(Eq("c", "d"), Atom("e")))
//
// renders "a = b AND c = d OR e". Wrap the inner term with Paren to keep
// its grouping.
type Condition struct {
	Left  Term
	Op    Op
	Right Term
}

// SQL renders the condition.
func (c Condition) SQL() string {
	return c.Left.SQL() + " " + c.Op.SQL() + " " + c.Right.SQL()
}

// Parens wraps a term in parentheses.
type Parens struct {
	Term Term
}

// SQL renders the parenthesized term.
func (p Parens) SQL() string {
	return "(" + p.Term.SQL() + ")"
}

// NotExpr negates a term.
type NotExpr struct {
	Term Term
}

// SQL renders NOT followed by the term. The operand is not parenthesized.
func (n NotExpr) SQL() string {
	return "NOT " + n.Term.SQL()
}

// Unary applies a prefix operator to a term (e.g. EXISTS (subquery)).
type Unary struct {
	Op   Op
	Term Term
}

// SQL renders the operator followed by the term.
func (u Unary) SQL() string {
	return u.Op.SQL() + " " + u.Term.SQL()
}

// List is a parenthesized, comma-separated list of terms, the right-hand
// side of an IN comparison.
type List struct {
	Terms []Term
}

// SQL renders the list.
func (l List) SQL() string {
	return "(" + joinTerms(l.Terms) + ")"
}

// Subquery embeds a query as a scalar expression.
type Subquery struct {
	Query Query
}

// SQL renders the query in parentheses.
func (s Subquery) SQL() string {
	return "(" + s.Query.SQL() + ")"
}

// Null is the empty term. It renders to nothing, so a Condition using it as
// an operand keeps its surrounding spaces.
type Null struct{}

// SQL renders the empty string.
func (Null) SQL() string {
	return ""
}

// joinTerms renders terms separated by ", ".
func joinTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.SQL()
	}
	return strings.Join(parts, ", ")
}
