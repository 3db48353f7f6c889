package squeal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm_SQL(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"atom", Atom("users.id"), "users.id"},
		{"atom is not escaped", Atom("'it''s'"), "'it''s'"},
		{"condition", Cond(Atom("a"), OpEquals, Atom("b")), "a = b"},
		{"custom op", Cond(Atom("a"), Custom("<>"), Atom("b")), "a <> b"},
		{"parens", Paren(Eq("a", "b")), "(a = b)"},
		{"not", Not(Atom("deleted")), "NOT deleted"},
		{"not keeps operand unparenthesized", Not(Eq("a", "b")), "NOT a = b"},
		{"cast", Cast{Term: Atom("x"), Type: "integer"}, "CAST(x AS integer)"},
		{"pg cast", PgCast{Term: Atom("$1"), Type: "uuid"}, "$1::uuid"},
		{"coalesce", Coalesce{Terms: []Term{Atom("a"), Atom("b"), Atom("0")}}, "COALESCE(a, b, 0)"},
		{"empty coalesce", Coalesce{}, "COALESCE()"},
		{"nullif", NullIf{Left: Atom("a"), Right: Atom("''")}, "NULLIF(a, '')"},
		{"concat", Concat{Terms: []Term{Atom("first"), Atom("' '"), Atom("last")}}, "CONCAT(first, ' ', last)"},
		{"empty concat", Concat{}, "CONCAT()"},
		{"substring bare", Substring{Term: Atom("s")}, "SUBSTRING(s)"},
		{"substring from", Substring{Term: Atom("s"), From: Atom("2")}, "SUBSTRING(s FROM 2)"},
		{"substring for", Substring{Term: Atom("s"), For: Atom("3")}, "SUBSTRING(s FOR 3)"},
		{"substring from for", Substring{Term: Atom("s"), From: Atom("2"), For: Atom("3")}, "SUBSTRING(s FROM 2 FOR 3)"},
		{"upper", Upper{Term: Atom("name")}, "UPPER(name)"},
		{"lower", Lower{Term: Atom("email")}, "LOWER(email)"},
		{"now", Now{}, "NOW()"},
		{"current date", CurrentDate{}, "CURRENT_DATE"},
		{"interval", Interval("1 day"), "INTERVAL '1 day'"},
		{"date add", DateAdd{Left: Now{}, Right: Interval("7 days")}, "NOW() + INTERVAL '7 days'"},
		{"date sub", DateSub{Left: CurrentDate{}, Right: Interval("1 month")}, "CURRENT_DATE - INTERVAL '1 month'"},
		{"null", Null{}, ""},
		{"list", List{Terms: []Term{Atom("1"), Atom("2")}}, "(1, 2)"},
		{"unary", Unary{Op: OpExists, Term: Atom("(SELECT 1)")}, "EXISTS (SELECT 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.SQL())
		})
	}
}

func TestOp_SQL(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpAnd, "AND"},
		{OpOr, "OR"},
		{OpEquals, "="},
		{OpNotEquals, "<>"},
		{OpGreaterThan, ">"},
		{OpLessThan, "<"},
		{OpGreaterOrEqual, ">="},
		{OpLessOrEqual, "<="},
		{OpLike, "LIKE"},
		{OpIn, "IN"},
		{OpExists, "EXISTS"},
		{OpNotExists, "NOT EXISTS"},
		{OpAny, "ANY"},
		{OpAll, "ALL"},
		{Custom("ILIKE"), "ILIKE"},
		{Custom("IS DISTINCT FROM"), "IS DISTINCT FROM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.SQL())
		})
	}
}

func TestCondition_RendersFlat(t *testing.T) {
	flat := And(Eq("a", "b"), Or(Eq("c", "d"), Atom("e")))
	assert.Equal(t, "a = b AND c = d OR e", flat.SQL())

	grouped := And(Eq("a", "b"), Paren(Or(Eq("c", "d"), Atom("e"))))
	assert.Equal(t, "a = b AND (c = d OR e)", grouped.SQL())
}

func TestParens_WrapsAnyTerm(t *testing.T) {
	terms := []Term{
		Atom("x"),
		Eq("a", "b"),
		Null{},
		Case(When{When: Atom("a"), Then: Atom("1")}),
		Paren(Atom("nested")),
	}
	for _, term := range terms {
		assert.Equal(t, "("+term.SQL()+")", Paren(term).SQL())
	}
}

func TestTerm_RenderIsIdempotent(t *testing.T) {
	term := And(
		Paren(Or(Gt("age", "18"), IsNull(Atom("age")))),
		Cond(Lower{Term: Atom("email")}, OpLike, Atom("'%@example.com'")),
	)
	first := term.SQL()
	assert.Equal(t, first, term.SQL())
	assert.Equal(t, "(age > 18 OR age IS NULL) AND LOWER(email) LIKE '%@example.com'", first)
}

func TestCaseExpression_SQL(t *testing.T) {
	tests := []struct {
		name string
		expr CaseExpression
		want string
	}{
		{
			name: "single arm",
			expr: Case(When{When: Eq("status", "1"), Then: Atom("'active'")}),
			want: "CASE WHEN status = 1 THEN 'active' END",
		},
		{
			name: "arms keep declaration order",
			expr: Case(
				When{When: Gt("score", "90"), Then: Atom("'A'")},
				When{When: Gt("score", "80"), Then: Atom("'B'")},
			).Otherwise(Atom("'C'")),
			want: "CASE WHEN score > 90 THEN 'A' WHEN score > 80 THEN 'B' ELSE 'C' END",
		},
		{
			name: "no arms",
			expr: CaseExpression{},
			want: "CASE END",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.SQL())
		})
	}
}

func TestCaseExpression_OtherwiseDoesNotAlias(t *testing.T) {
	base := Case(When{When: Atom("a"), Then: Atom("1")})
	withElse := base.Otherwise(Atom("0"))

	assert.Equal(t, "CASE WHEN a THEN 1 END", base.SQL())
	assert.Equal(t, "CASE WHEN a THEN 1 ELSE 0 END", withElse.SQL())
}

func TestConditionHelpers(t *testing.T) {
	sub := Q().Select("user_id").From("banned").Build()

	tests := []struct {
		name string
		term Term
		want string
	}{
		{"eq", Eq("active", "true"), "active = true"},
		{"ne", Ne("a", "b"), "a <> b"},
		{"gt", Gt("a", "1"), "a > 1"},
		{"lt", Lt("a", "1"), "a < 1"},
		{"gte", Gte("a", "1"), "a >= 1"},
		{"lte", Lte("a", "1"), "a <= 1"},
		{"like", Like("name", "'A%'"), "name LIKE 'A%'"},
		{"in", In("id", "1", "2", "3"), "id IN (1, 2, 3)"},
		{"in query", InQuery("id", sub), "id IN (SELECT user_id FROM banned)"},
		{"any", AnyOf("id", OpEquals, sub), "id = ANY (SELECT user_id FROM banned)"},
		{"all", AllOf("id", OpNotEquals, sub), "id <> ALL (SELECT user_id FROM banned)"},
		{"exists", Exists(sub), "EXISTS (SELECT user_id FROM banned)"},
		{"not exists", NotExists(sub), "NOT EXISTS (SELECT user_id FROM banned)"},
		{"is null", IsNull(Atom("deleted_at")), "deleted_at IS NULL"},
		{"is not null", IsNotNull(Atom("deleted_at")), "deleted_at IS NOT NULL"},
		{"subquery", Subquery{Query: sub}, "(SELECT user_id FROM banned)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.SQL())
		})
	}
}
