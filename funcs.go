package squeal

// =============================================================================
// Type Conversion
// =============================================================================

// Cast is the standard CAST(term AS type) conversion.
type Cast struct {
	Term Term
	Type string
}

// SQL renders the cast.
func (c Cast) SQL() string {
	return "CAST(" + c.Term.SQL() + " AS " + c.Type + ")"
}

// PgCast is the PostgreSQL shorthand conversion term::type.
type PgCast struct {
	Term Term
	Type string
}

// SQL renders the cast.
func (c PgCast) SQL() string {
	return c.Term.SQL() + "::" + c.Type
}

// =============================================================================
// Null Handling
// =============================================================================

// Coalesce returns the first non-null of its terms.
type Coalesce struct {
	Terms []Term
}

// SQL renders COALESCE(a, b, ...).
func (c Coalesce) SQL() string {
	return "COALESCE(" + joinTerms(c.Terms) + ")"
}

// NullIf returns NULL when both terms are equal.
type NullIf struct {
	Left  Term
	Right Term
}

// SQL renders NULLIF(a, b).
func (n NullIf) SQL() string {
	return "NULLIF(" + n.Left.SQL() + ", " + n.Right.SQL() + ")"
}

// =============================================================================
// String Functions
// =============================================================================

// Concat joins its terms as text.
type Concat struct {
	Terms []Term
}

// SQL renders CONCAT(a, b, ...).
func (c Concat) SQL() string {
	return "CONCAT(" + joinTerms(c.Terms) + ")"
}

// Substring extracts part of a string.
// From and For are optional; either, both or neither may be set.
type Substring struct {
	Term Term
	From Term // optional
	For  Term // optional
}

// SQL renders SUBSTRING(term [FROM from] [FOR for]).
func (s Substring) SQL() string {
	out := "SUBSTRING(" + s.Term.SQL()
	if s.From != nil {
		out += " FROM " + s.From.SQL()
	}
	if s.For != nil {
		out += " FOR " + s.For.SQL()
	}
	return out + ")"
}

// Upper converts a string to upper case.
type Upper struct {
	Term Term
}

// SQL renders UPPER(term).
func (u Upper) SQL() string {
	return "UPPER(" + u.Term.SQL() + ")"
}

// Lower converts a string to lower case.
type Lower struct {
	Term Term
}

// SQL renders LOWER(term).
func (l Lower) SQL() string {
	return "LOWER(" + l.Term.SQL() + ")"
}

// =============================================================================
// Date and Time
// =============================================================================

// Now is the current transaction timestamp.
type Now struct{}

func (Now) SQL() string { return "NOW()" }

// CurrentDate is the current date.
type CurrentDate struct{}

func (CurrentDate) SQL() string { return "CURRENT_DATE" }

// Interval is an interval literal such as Interval("1 day").
type Interval string

// SQL renders INTERVAL 'text'. The text is not escaped.
func (i Interval) SQL() string {
	return "INTERVAL '" + string(i) + "'"
}

// DateAdd adds an interval to a date or timestamp.
type DateAdd struct {
	Left  Term
	Right Term
}

func (d DateAdd) SQL() string { return d.Left.SQL() + " + " + d.Right.SQL() }

// DateSub subtracts an interval (or another date) from a date or timestamp.
type DateSub struct {
	Left  Term
	Right Term
}

func (d DateSub) SQL() string { return d.Left.SQL() + " - " + d.Right.SQL() }
