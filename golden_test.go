package squeal

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden files live in testdata/golden. Regenerate with: go test -run TestGolden -update
func TestGolden(t *testing.T) {
	tests := []struct {
		name string
		stmt func() Statement
	}{
		{"report_query", func() Statement {
			q := Q()
			recent := Q().Select("user_id", "total").From("orders").Where(Gt("created_at", q.Param())).Build()
			return q.With("recent", recent).
				SelectExpressions(
					Column("u.id"),
					ExprColumn{Term: Coalesce{Terms: []Term{Atom("sum(r.total)"), Atom("0")}}, Alias: "spent"},
					ExprColumn{
						Term:  Case(When{When: Gt("sum(r.total)", "1000"), Then: Atom("'gold'")}).Otherwise(Atom("'standard'")),
						Alias: "tier",
					},
				).
				From("users u").
				LeftJoin("recent r", Eq("r.user_id", "u.id")).
				Where(Eq("u.active", "true")).
				AndWhere(Paren(Or(IsNull(Atom("u.deleted_at")), Gt("u.deleted_at", "NOW()")))).
				GroupBy("u.id").
				Having(Gt("count(r.user_id)", q.Param())).
				OrderBy(Desc("spent"), Asc("u.id")).
				Limit(25).
				Offset(50).
				Build()
		}},
		{"upsert_insert", func() Statement {
			ib := I("page_views")
			return ib.Columns("path", "day", "hits").
				Values(ib.Param(), "CURRENT_DATE", "1").
				OnConflictDoUpdate([]string{"path", "day"}, Assign("hits", "page_views.hits + 1")).
				Returning(Selected{"hits"}).
				Build()
		}},
		{"update_from", func() Statement {
			ub := U("accounts")
			return ub.Set(Assign("balance", "accounts.balance - t.amount"), Assign("updated_at", Now{}.SQL())).
				From("transfers t").
				Where(Eq("t.account_id", "accounts.id")).
				AndWhere(Eq("t.batch_id", ub.Param())).
				Returning(Selected{"accounts.id", "accounts.balance"}).
				Build()
		}},
		{"delete_returning", func() Statement {
			orphaned := NotExists(Q().Select("1").From("users").Where(Eq("users.id", "sessions.user_id")).Build())
			return D("sessions").
				Where(Cond(Atom("expires_at"), OpLessThan, DateSub{Left: Now{}, Right: Interval("30 days")})).
				OrWhere(orphaned).
				Returning(Selected{"id"}).
				Build()
		}},
		{"create_table", func() Statement {
			return T("events").
				IfNotExists().
				Column("id", "bigserial", "PRIMARY KEY").
				Column("tenant_id", "uuid", "NOT NULL").
				Column("payload", "jsonb", "NOT NULL", "DEFAULT '{}'").
				Column("created_at", "timestamptz", "NOT NULL", "DEFAULT NOW()").
				BuildCreateTable()
		}},
		{"drop_table", func() Statement {
			return T("events").IfExists().BuildDropTable()
		}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Assert(t, tt.name, []byte(tt.stmt().SQL()))
		})
	}
}
