// Package main provides the squeal CLI.
//
// The CLI renders and runs YAML statement documents:
//   - render: print the SQL for one or more documents
//   - exec: render a document file and run it against PostgreSQL
//   - config show: print the effective configuration
//   - version: print build information
//
// Usage:
//
//	squeal [flags] <command>
//
// Commands that need a database (exec) read the connection from --db,
// squeal.yaml, or SQUEAL_DATABASE_* environment variables.
package main

func main() {
	Execute()
}
