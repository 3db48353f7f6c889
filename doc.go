// Package squeal builds PostgreSQL statements from typed values.
//
// # Overview
//
// Rather than concatenating SQL strings, callers assemble a tree of
// expression and clause values and render it with SQL(). Rendering is
// deterministic and never fails; squeal does not parse, validate or escape
// anything. Atom text, column names and values are emitted exactly as given,
// so callers must supply safe literals or $N placeholders.
//
// # Expressions
//
// Every expression implements Term:
//
//	Atom("users.id")                     // users.id
//	Eq("active", "true")                 // active = true
//	Cond(Atom("a"), Custom("@>"), b)     // a @> b
//	And(Eq("a", "1"), Paren(Or(x, y)))   // a = 1 AND (x OR y)
//	Not(Atom("deleted"))                 // NOT deleted
//	PgCast{Term: Atom("$1"), Type: "int"} // $1::int
//	Coalesce{Terms: []Term{a, b}}        // COALESCE(a, b)
//	Case(When{w, t}).Otherwise(e)        // CASE WHEN w THEN t ELSE e END
//	Exists(q)                            // EXISTS (SELECT ...)
//
// Conditions never add parentheses of their own. Mixed AND/OR trees keep
// their intended grouping only through explicit Paren calls.
//
// # Statements
//
// Query, Insert, Update, Delete, CreateTable and DropTable implement
// Statement. Each emits its present clauses in a fixed order, so the
// rendered text does not depend on the order in which fields were set.
//
// # Builders
//
// Q, I, U, D and T return fluent builders. Setters return the builder so
// calls chain, and Build snapshots an independent statement value:
//
//	q := squeal.Q()
//	stmt := q.Select("id", "name", "email").
//	    From("users").
//	    Where(squeal.Eq("active", "true")).
//	    OrderBy(squeal.Desc("created_at")).
//	    Limit(10).
//	    Build()
//
//	stmt.SQL()
//	// SELECT id, name, email FROM users WHERE active = true ORDER BY created_at DESC LIMIT 10
//
// Param returns the next $N placeholder of a builder. Numbering is private
// to each builder and starts at $1; the caller passes the matching values to
// the driver when executing the statement (see package pgexec).
package squeal
