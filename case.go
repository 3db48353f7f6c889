package squeal

import "strings"

// When is a single WHEN/THEN arm of a CASE expression.
type When struct {
	When Term
	Then Term
}

// CaseExpression is a searched CASE. Arms render in declaration order.
type CaseExpression struct {
	Whens []When
	Else  Term // optional
}

// Case creates a CASE expression from its arms.
func Case(whens ...When) CaseExpression {
	return CaseExpression{Whens: whens}
}

// Otherwise returns a copy of the expression with an ELSE branch.
func (c CaseExpression) Otherwise(t Term) CaseExpression {
	c.Whens = append([]When(nil), c.Whens...)
	c.Else = t
	return c
}

// SQL renders CASE WHEN w THEN t ... [ELSE e] END.
func (c CaseExpression) SQL() string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, w := range c.Whens {
		sb.WriteString(" WHEN ")
		sb.WriteString(w.When.SQL())
		sb.WriteString(" THEN ")
		sb.WriteString(w.Then.SQL())
	}
	if c.Else != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(c.Else.SQL())
	}
	sb.WriteString(" END")
	return sb.String()
}
