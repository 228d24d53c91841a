// Package main is the entry point for the testswitch CLI.
package main

import (
	"os"

	"github.com/thoreinstein/testswitch/cmd/testswitch/commands"
	"github.com/thoreinstein/testswitch/internal/errors"
)

func main() {
	err := commands.Execute()
	if err != nil {
		commands.ReportError(os.Stderr, err)
	}
	os.Exit(errors.ExitCode(err))
}
