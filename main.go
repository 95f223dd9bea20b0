// Package main is the entry point for the sheetfilter CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The sheetfilter tool removes rows from
// .xlsx spreadsheets using per-column wildcard exclusion and inclusion lists.
package main

import "github.com/ajxudir/sheetfilter/cmd"

// main initializes and runs the sheetfilter CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like run, init-lists, config and version.
func main() {
	cmd.Execute()
}
