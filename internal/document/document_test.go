package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, src string) string {
	t.Helper()
	docs, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	stmt, err := docs[0].Build()
	require.NoError(t, err)
	return stmt.SQL()
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "select with every clause",
			src: `
kind: select
select: [a, b]
from: table
where: {left: a, op: "<>", right: b}
group_by: [a, b]
having: {left: a, op: ne, right: b}
order_by: [a, b desc]
limit: 19
offset: 10
`,
			want: "SELECT a, b FROM table WHERE a <> b GROUP BY a, b HAVING a <> b ORDER BY a ASC, b DESC LIMIT 19 OFFSET 10",
		},
		{
			name: "select defaults to star",
			src:  "kind: select\nfrom: users\nfor_update: true\n",
			want: "SELECT * FROM users FOR UPDATE",
		},
		{
			name: "params number in reading order",
			src: `
kind: select
with:
  - name: recent
    query:
      select: [user_id]
      from: orders
      where: {left: created_at, op: gt, right: {param: true}}
select:
  - u.id
  - expr: {left: u.score, op: "*", right: {param: true}}
    alias: weighted
from: users u
joins:
  - type: inner
    table: recent r
    condition: {left: r.user_id, op: "=", right: u.id}
where:
  and:
    - {left: u.tenant, op: eq, right: {param: true}}
    - parens:
        or:
          - {is_null: u.deleted_at}
          - {left: u.deleted_at, op: gt, right: "NOW()"}
`,
			want: "WITH recent AS (SELECT user_id FROM orders WHERE created_at > $1) " +
				"SELECT u.id, u.score * $2 AS weighted FROM users u INNER JOIN recent r ON r.user_id = u.id " +
				"WHERE u.tenant = $3 AND (u.deleted_at IS NULL OR u.deleted_at > NOW())",
		},
		{
			name: "distinct on with derived table",
			src: `
kind: select
select: "*"
distinct_on: [user_id]
from_query:
  alias: t
  query: {from: events, order_by: [ts desc]}
`,
			want: "SELECT DISTINCT ON (user_id) * FROM (SELECT * FROM events ORDER BY ts DESC) AS t",
		},
		{
			name: "exists, in list and scalar atoms",
			src: `
kind: select
select: [id]
from: users
where:
  and:
    - exists: {select: ["1"], from: orders, where: {left: orders.user_id, op: "=", right: users.id}}
    - {left: status, op: in, right: {list: ["'a'", "'b'"]}}
    - {left: active, op: "=", right: true}
    - {left: score, op: ">=", right: 10}
`,
			want: "SELECT id FROM users WHERE EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id) " +
				"AND status IN ('a', 'b') AND active = true AND score >= 10",
		},
		{
			name: "insert values with upsert",
			src: `
kind: insert
table: users
columns: [email, name]
values:
  - [{param: true}, {param: true}]
  - ["'b@example.com'", null]
on_conflict:
  columns: [email]
  action: update
  set:
    - {column: name, value: EXCLUDED.name}
returning: [id]
`,
			want: "INSERT INTO users (email, name) VALUES ($1, $2), ('b@example.com', NULL) " +
				"ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		},
		{
			name: "insert select do nothing",
			src: `
kind: insert
table: archive
columns: [id, email]
query: {select: [id, email], from: users, where: {not: active}}
on_conflict: {action: nothing}
`,
			want: "INSERT INTO archive (id, email) SELECT id, email FROM users WHERE NOT active ON CONFLICT DO NOTHING",
		},
		{
			name: "update from",
			src: `
kind: update
table: accounts
set:
  - {column: balance, value: accounts.balance - t.amount}
  - {column: touched_by, value: {param: true}}
from: transfers t
where: {left: t.account_id, op: "=", right: accounts.id}
returning: "*"
`,
			want: "UPDATE accounts SET balance = accounts.balance - t.amount, touched_by = $1 " +
				"FROM transfers t WHERE t.account_id = accounts.id RETURNING *",
		},
		{
			name: "delete returning expression",
			src: `
kind: delete
table: sessions
where: {left: expires_at, op: "<", right: {param: true}}
returning:
  - id
  - {expr: "now() - expires_at", alias: age}
`,
			want: "DELETE FROM sessions WHERE expires_at < $1 RETURNING id, now() - expires_at AS age",
		},
		{
			name: "create table",
			src: `
kind: create_table
table: events
if_not_exists: true
definition:
  - {name: id, type: bigserial, modifiers: [PRIMARY KEY]}
  - {name: body, type: jsonb, modifiers: [NOT NULL]}
`,
			want: "CREATE TABLE IF NOT EXISTS events (id bigserial PRIMARY KEY, body jsonb NOT NULL)",
		},
		{
			name: "drop table",
			src:  "kind: drop_table\ntable: events\nif_exists: true\n",
			want: "DROP TABLE IF EXISTS events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.src))
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"missing kind", "table: x", "missing kind"},
		{"unknown kind", "kind: merge\ntable: x", `unknown kind "merge"`},
		{"missing table", "kind: delete", "delete needs a table"},
		{"update without set", "kind: update\ntable: x", "update needs set"},
		{"half condition", "kind: delete\ntable: x\nwhere: {left: a, op: \"=\"}", "needs left, op and right"},
		{"mixed forms", "kind: delete\ntable: x\nwhere: {not: a, parens: b}", "mixes 2 forms"},
		{"empty and", "kind: delete\ntable: x\nwhere: {and: []}", "at least one term"},
		{"bad join", "kind: select\nfrom: a\njoins: [{type: sideways, table: b}]", `unknown join type "sideways"`},
		{"bad action", "kind: insert\ntable: x\non_conflict: {action: merge}", `action "merge"`},
		{"distinct twice", "kind: select\ndistinct: true\ndistinct_on: [a]", "exclusive"},
		{"named", "kind: drop_table\nname: cleanup", "cleanup: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Parse([]byte(tt.src))
			require.NoError(t, err)
			_, err = docs[0].Build()
			require.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unknown field", "kind: select\nfrom: a\nlimt: 3"},
		{"unknown term field", "kind: delete\ntable: x\nwhere: {lft: a}"},
		{"list as term", "kind: delete\ntable: x\nwhere: [a, b]"},
		{"order by object", "kind: select\norder_by: [{column: a}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestParse_MultipleStatements(t *testing.T) {
	src := `
statements:
  - kind: create_table
    name: create
    table: t
    definition: [{name: id, type: int}]
  - kind: insert
    name: seed
    table: t
    columns: [id]
    values: [[1], [2]]
  - kind: drop_table
    table: t
`
	docs, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, docs, 3)

	var got []string
	for _, d := range docs {
		stmt, err := d.Build()
		require.NoError(t, err)
		got = append(got, stmt.SQL())
	}
	assert.Equal(t, []string{
		"CREATE TABLE t (id int)",
		"INSERT INTO t (id) VALUES (1), (2)",
		"DROP TABLE t",
	}, got)
	assert.Equal(t, "seed", docs[1].Name)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: select\nfrom: t\n"), 0o644))

	docs, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading")
}

func TestCond_MarshalAtom(t *testing.T) {
	data, err := A("x > 1").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"x > 1"`, string(data))
}
