package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/upside-down-research/squeal"
	"github.com/upside-down-research/squeal/internal/cli"
	"github.com/upside-down-research/squeal/internal/document"
	"github.com/upside-down-research/squeal/pkg/pgexec"
)

var (
	execDB     string
	execDriver string
	execArgs   []string
	execDryRun bool
	execOutput string
)

var execCmd = &cobra.Command{
	Use:   "exec <file>",
	Short: "Run statement documents against the database",
	Long: `Render the statements in a document file and run them in one transaction.

Statements that return rows (selects, and anything with returning) print
their results; the others print the number of rows affected.`,
	Example: `  # Run a migration-style file
  squeal exec statements/setup.yaml --db postgres://localhost/mydb

  # Bind $1 and $2 of a single statement
  squeal exec statements/user_by_email.yaml --arg alice@example.com --arg true

  # Print the SQL without running it
  squeal exec statements/setup.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch execOutput {
		case "table", "yaml", "":
		default:
			return cli.GeneralError(fmt.Sprintf("unknown output format %q (want table or yaml)", execOutput), nil)
		}

		docs, stmts, err := loadStatements(args[0])
		if err != nil {
			return err
		}
		if len(execArgs) > 0 && len(docs) > 1 {
			return cli.GeneralError("--arg needs a file with a single statement", nil)
		}

		out := cmd.OutOrStdout()
		if execDryRun {
			for i, d := range docs {
				writeStatement(out, d.Name, stmts[i].SQL(), true)
			}
			return nil
		}

		dsn, err := resolveDSN(execDB)
		if err != nil {
			return err
		}
		driver := resolveString(execDriver, cfg.Database.Driver)

		ctx := cmd.Context()
		db, err := pgexec.Open(ctx, driver, dsn)
		if err != nil {
			return cli.DBConnectError("connecting to database", err)
		}
		defer func() { _ = db.Close() }()

		bind := make([]any, len(execArgs))
		for i, a := range execArgs {
			bind[i] = a
		}

		ex := pgexec.New(db, pgexec.WithLogger(logger))
		return ex.InTx(ctx, func(tx *pgexec.Executor) error {
			for i, d := range docs {
				if err := runStatement(ctx, tx, out, d, stmts[i], bind); err != nil {
					return cli.GeneralError(fmt.Sprintf("running %s", label(d, i)), err)
				}
			}
			return nil
		})
	},
}

func init() {
	f := execCmd.Flags()
	f.StringVar(&execDB, "db", "", "database URL")
	f.StringVar(&execDriver, "driver", "", "database/sql driver (pgx or postgres)")
	f.StringArrayVar(&execArgs, "arg", nil, "value bound to the next placeholder (repeatable)")
	f.BoolVar(&execDryRun, "dry-run", false, "print SQL without running it")
	f.StringVarP(&execOutput, "output", "o", "table", "row output format (table or yaml)")
}

func loadStatements(path string) ([]document.Document, []squeal.Statement, error) {
	docs, err := document.ParseFile(path)
	if err != nil {
		return nil, nil, cli.DecodeError("decoding statements", err)
	}
	stmts := make([]squeal.Statement, len(docs))
	for i := range docs {
		stmt, err := docs[i].Build()
		if err != nil {
			return nil, nil, cli.DecodeError(fmt.Sprintf("building %s", path), err)
		}
		stmts[i] = stmt
	}
	return docs, stmts, nil
}

// resolveDSN gets the database DSN from flag or config.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	return dsn, nil
}

func runStatement(ctx context.Context, ex *pgexec.Executor, out io.Writer, d document.Document, stmt squeal.Statement, args []any) error {
	if d.Kind == document.KindSelect || d.Returning != nil {
		rows, err := ex.Query(ctx, stmt, args...)
		if err != nil {
			return err
		}
		res, err := pgexec.Collect(rows)
		if err != nil {
			return err
		}
		return printResult(out, res)
	}

	r, err := ex.Exec(ctx, stmt, args...)
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	n, err := r.RowsAffected()
	if err != nil {
		// Some drivers cannot report it for DDL.
		n = 0
	}
	fmt.Fprintf(out, "%d rows affected\n", n)
	return nil
}

func printResult(out io.Writer, res *pgexec.Result) error {
	switch execOutput {
	case "yaml":
		data, err := yaml.Marshal(res.Maps())
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "table", "":
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				if v == nil {
					cells[i] = "NULL"
				} else {
					cells[i] = fmt.Sprint(v)
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		fmt.Fprintf(tw, "(%d rows)\n", len(res.Rows))
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", execOutput)
	}
}

func label(d document.Document, i int) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("statement %d (%s)", i+1, d.Kind)
}
