package squeal

// Op is the operator placed between the two sides of a Condition.
// Any text is a valid Op; the constants cover the operators PostgreSQL
// spells with a fixed keyword or symbol.
type Op string

// Logical operators.
const (
	OpAnd Op = "AND"
	OpOr  Op = "OR"
)

// Comparison operators.
const (
	OpEquals         Op = "="
	OpNotEquals      Op = "<>"
	OpGreaterThan    Op = ">"
	OpLessThan       Op = "<"
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
	OpLike           Op = "LIKE"
)

// Set and subquery operators.
const (
	OpIn        Op = "IN"
	OpExists    Op = "EXISTS"
	OpNotExists Op = "NOT EXISTS"
	OpAny       Op = "ANY"
	OpAll       Op = "ALL"
)

// Custom returns an operator that renders text verbatim.
// Use it for operators without a constant, e.g. Custom("ILIKE") or Custom("@>").
func Custom(text string) Op {
	return Op(text)
}

// SQL renders the operator.
func (o Op) SQL() string {
	return string(o)
}
