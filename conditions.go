package squeal

// Cond builds a Condition from two terms and an operator.
func Cond(left Term, op Op, right Term) Condition {
	return Condition{Left: left, Op: op, Right: right}
}

// Comparison shortcuts. Both sides are atoms: pass column names, literals
// or placeholders exactly as they should appear in the output.

// Eq renders "left = right".
func Eq(left, right string) Condition { return Cond(Atom(left), OpEquals, Atom(right)) }

// Ne renders "left <> right".
func Ne(left, right string) Condition { return Cond(Atom(left), OpNotEquals, Atom(right)) }

// Gt renders "left > right".
func Gt(left, right string) Condition { return Cond(Atom(left), OpGreaterThan, Atom(right)) }

// Lt renders "left < right".
func Lt(left, right string) Condition { return Cond(Atom(left), OpLessThan, Atom(right)) }

// Gte renders "left >= right".
func Gte(left, right string) Condition { return Cond(Atom(left), OpGreaterOrEqual, Atom(right)) }

// Lte renders "left <= right".
func Lte(left, right string) Condition { return Cond(Atom(left), OpLessOrEqual, Atom(right)) }

// Like renders "left LIKE pattern".
func Like(left, pattern string) Condition { return Cond(Atom(left), OpLike, Atom(pattern)) }

// In renders "column IN (v1, v2, ...)".
func In(column string, values ...string) Condition {
	terms := make([]Term, len(values))
	for i, v := range values {
		terms[i] = Atom(v)
	}
	return Cond(Atom(column), OpIn, List{Terms: terms})
}

// InQuery renders "column IN (subquery)".
func InQuery(column string, q Query) Condition {
	return Cond(Atom(column), OpIn, Subquery{Query: q})
}

// AnyOf renders "column op ANY (subquery)".
func AnyOf(column string, op Op, q Query) Condition {
	return Cond(Atom(column), op, Unary{Op: OpAny, Term: Subquery{Query: q}})
}

// AllOf renders "column op ALL (subquery)".
func AllOf(column string, op Op, q Query) Condition {
	return Cond(Atom(column), op, Unary{Op: OpAll, Term: Subquery{Query: q}})
}

// IsNull renders "term IS NULL".
func IsNull(t Term) Condition { return Cond(t, Custom("IS"), Atom("NULL")) }

// IsNotNull renders "term IS NOT NULL".
func IsNotNull(t Term) Condition { return Cond(t, Custom("IS NOT"), Atom("NULL")) }

// And joins two terms with AND. Neither side is parenthesized.
func And(left, right Term) Condition { return Cond(left, OpAnd, right) }

// Or joins two terms with OR. Neither side is parenthesized.
func Or(left, right Term) Condition { return Cond(left, OpOr, right) }

// Not negates a term.
func Not(t Term) NotExpr { return NotExpr{Term: t} }

// Paren wraps a term in parentheses.
func Paren(t Term) Parens { return Parens{Term: t} }

// Exists renders "EXISTS (subquery)".
func Exists(q Query) Unary { return Unary{Op: OpExists, Term: Subquery{Query: q}} }

// NotExists renders "NOT EXISTS (subquery)".
func NotExists(q Query) Unary { return Unary{Op: OpNotExists, Term: Subquery{Query: q}} }
