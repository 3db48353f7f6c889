package pgexec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upside-down-research/squeal"
	"github.com/upside-down-research/squeal/internal/testutil"
	"github.com/upside-down-research/squeal/pkg/pgexec"
)

func TestPostgres_Statements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			db, err := pgexec.Open(ctx, driver, testutil.DSN(t))
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })
			ex := pgexec.New(db)

			create := squeal.T("accounts").
				Column("id", "bigserial", "PRIMARY KEY").
				Column("email", "text", "NOT NULL", "UNIQUE").
				Column("balance", "numeric(12,2)", "NOT NULL", "DEFAULT 0").
				Column("tags", "text[]", "NOT NULL", "DEFAULT '{}'").
				BuildCreateTable()
			_, err = ex.Exec(ctx, create)
			require.NoError(t, err)

			// Upsert with RETURNING through a single-row query.
			ib := squeal.I("accounts")
			upsert := ib.Columns("email", "balance", "tags").
				Values(ib.Param(), ib.Param(), ib.Param()).
				OnConflictDoUpdate([]string{"email"}, squeal.Assign("balance", "accounts.balance + EXCLUDED.balance")).
				Returning(squeal.Selected{"id", "balance::text"}).
				Build()

			var id int64
			var balance string
			row, err := ex.QueryRow(ctx, upsert, "a@example.com", 10, pgexec.Array([]string{"new"}))
			require.NoError(t, err)
			require.NoError(t, row.Scan(&id, &balance))
			assert.Equal(t, "10.00", balance)

			row, err = ex.QueryRow(ctx, upsert, "a@example.com", 5, pgexec.Array([]string{}))
			require.NoError(t, err)
			var again int64
			require.NoError(t, row.Scan(&again, &balance))
			assert.Equal(t, id, again)
			assert.Equal(t, "15.00", balance)

			// Plain insert of a duplicate maps onto the sentinel.
			dup := squeal.I("accounts").Columns("email").Values("'a@example.com'").Build()
			_, err = ex.Exec(ctx, dup)
			assert.True(t, pgexec.IsUniqueViolationErr(err), "got %v", err)

			_, err = ex.Exec(ctx, squeal.I("accounts").Columns("email").Values("'b@example.com'").Build())
			require.NoError(t, err)

			// = ANY($1) with an array bind.
			q := squeal.Q()
			sel := q.Select("email").
				From("accounts").
				Where(squeal.Cond(squeal.Atom("id"), squeal.OpEquals, squeal.Atom("ANY("+q.Param()+")"))).
				OrderBy(squeal.Asc("email")).
				Build()
			rows, err := ex.Query(ctx, sel, pgexec.Array([]int64{id, id + 1}))
			require.NoError(t, err)
			res, err := pgexec.Collect(rows)
			require.NoError(t, err)
			assert.Equal(t, [][]any{{"a@example.com"}, {"b@example.com"}}, res.Rows)

			// Zero balances stay zero; delete them.
			ub := squeal.U("accounts")
			upd := ub.Set(squeal.Assign("balance", "accounts.balance * 2")).
				Where(squeal.Eq("email", ub.Param())).
				Build()
			_, err = ex.Exec(ctx, upd, "b@example.com")
			require.NoError(t, err)

			del := squeal.D("accounts").
				Where(squeal.Eq("balance", "0")).
				Returning(squeal.Selected{"email"}).
				Build()
			rows, err = ex.Query(ctx, del)
			require.NoError(t, err)
			res, err = pgexec.Collect(rows)
			require.NoError(t, err)
			assert.Equal(t, [][]any{{"b@example.com"}}, res.Rows)

			// FOR UPDATE inside a transaction.
			err = ex.InTx(ctx, func(tx *pgexec.Executor) error {
				lock := squeal.Q().Select("id").From("accounts").Where(squeal.Gt("balance", "0")).ForUpdate().Build()
				rows, err := tx.Query(ctx, lock)
				if err != nil {
					return err
				}
				res, err := pgexec.Collect(rows)
				if err != nil {
					return err
				}
				assert.Len(t, res.Rows, 1)
				return nil
			})
			require.NoError(t, err)

			_, err = ex.Exec(ctx, squeal.D("nope").Build())
			assert.True(t, pgexec.IsUndefinedTableErr(err), "got %v", err)

			_, err = ex.Exec(ctx, squeal.T("accounts").BuildDropTable())
			require.NoError(t, err)
		})
	}
}

func TestPostgres_InTxOnConnRollsBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db := testutil.EmptyDB(t)
	conn, err := db.Conn(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ex := pgexec.New(conn)

	_, err = ex.Exec(ctx, squeal.T("events").Column("id", "int", "PRIMARY KEY").BuildCreateTable())
	require.NoError(t, err)

	err = ex.InTx(ctx, func(tx *pgexec.Executor) error {
		if _, err := tx.Exec(ctx, squeal.I("events").Columns("id").Values("1").Build()); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, squeal.I("events").Columns("id").Values("1").Build())
		return err
	})
	require.Error(t, err)
	assert.True(t, pgexec.IsUniqueViolationErr(err), "got %v", err)

	rows, err := ex.Query(ctx, squeal.Q().Select("count(*)").From("events").Build())
	require.NoError(t, err)
	res, err := pgexec.Collect(rows)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(0)}}, res.Rows)
}
