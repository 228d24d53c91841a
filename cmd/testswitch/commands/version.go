package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/cmd"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, build date and Go version of testswitch.`,
		Run: func(c *cobra.Command, _ []string) {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "testswitch version %s\n", cmd.Version)
			fmt.Fprintf(out, "  commit: %s\n", cmd.Commit)
			fmt.Fprintf(out, "  built:  %s\n", cmd.Date)
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		},
	}
}
