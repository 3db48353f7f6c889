package main

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/upside-down-research/squeal/internal/cli"
	"github.com/upside-down-research/squeal/internal/document"
)

var (
	renderStatementsDir string
	renderNoSemicolon   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file...]",
	Short: "Print SQL for statement documents",
	Long: `Render statement documents to SQL.

With no arguments, every *.yaml and *.yml file in the statements directory
(render.statements in squeal.yaml) is rendered in name order.`,
	Example: `  # Render one document
  squeal render statements/active_users.yaml

  # Render everything in ./sql without trailing semicolons
  squeal render --statements sql --no-semicolon`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if len(files) == 0 {
			dir := resolveString(renderStatementsDir, cfg.Render.Statements)
			var err error
			files, err = findDocuments(dir)
			if err != nil {
				return cli.GeneralError("listing statements", err)
			}
			if len(files) == 0 {
				return cli.GeneralError(fmt.Sprintf("no statement documents found in %s", dir), nil)
			}
		}

		semicolon := cfg.Render.Semicolon && !renderNoSemicolon
		out := cmd.OutOrStdout()
		for _, f := range files {
			docs, err := document.ParseFile(f)
			if err != nil {
				return cli.DecodeError("decoding statements", err)
			}
			for _, d := range docs {
				stmt, err := d.Build()
				if err != nil {
					return cli.DecodeError(fmt.Sprintf("building %s", f), err)
				}
				logger.Debug().Str("file", f).Str("kind", d.Kind).Msg("rendered")
				writeStatement(out, d.Name, stmt.SQL(), semicolon)
			}
		}
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderStatementsDir, "statements", "", "directory of statement documents")
	f.BoolVar(&renderNoSemicolon, "no-semicolon", false, "do not terminate statements with ';'")
}

// findDocuments lists YAML documents in dir, sorted by name.
func findDocuments(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return files, nil
}

func writeStatement(w io.Writer, name, sql string, semicolon bool) {
	if name != "" {
		fmt.Fprintf(w, "-- %s\n", name)
	}
	fmt.Fprint(w, sql)
	if semicolon {
		fmt.Fprint(w, ";")
	}
	fmt.Fprintln(w)
}
