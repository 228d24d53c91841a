package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/switcher"
)

type resolveOptions struct {
	hostOptions
	json bool
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Show the counterpart search for a file without opening anything",
		Long: `Resolve classifies <file>, lists the candidate names and the extension
filter, and prints every matching path, in the order the switch command
would offer them.`,
		Example: `  # Human-readable report
  testswitch resolve src/widget.js

  # Machine-readable report for an editor integration
  testswitch resolve --json --open src/widget.js src/widget.js

  See Also: testswitch switch`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts, args[0])
		},
	}
	addHostFlags(cmd, &opts.hostOptions)
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	return cmd
}

func runResolve(cmd *cobra.Command, root *rootOptions, opts *resolveOptions, file string) error {
	cfg, err := root.settings()
	if err != nil {
		return err
	}

	ws, err := opts.workspace(cmd, file)
	if err != nil {
		return err
	}

	s := &switcher.Switcher{Config: cfg, Host: ws}
	res, err := s.Resolve(cmd.Context())
	if errors.Is(err, errors.ErrNoActiveDocument) {
		return errors.NewUserError(err, "Pass the file to resolve: testswitch resolve <file>")
	}
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res), "encoding result")
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func printResult(w io.Writer, res switcher.Result) {
	kind := "source"
	if res.Plan.IsTest {
		kind = "test"
	}

	fmt.Fprintf(w, "File:       %s\n", res.Plan.Active)
	fmt.Fprintf(w, "Base name:  %s\n", res.Plan.BaseName)
	fmt.Fprintf(w, "Kind:       %s\n", kind)
	fmt.Fprintf(w, "Candidates: %s\n", listOrNone(res.Plan.Candidates))
	fmt.Fprintf(w, "Extensions: %s\n", listOrAny(res.Plan.Extensions))
	fmt.Fprintf(w, "Matched in: %s\n", res.Phase)

	if len(res.Options) == 0 {
		fmt.Fprintln(w, switcher.NotFoundMessage)
		return
	}
	fmt.Fprintln(w, "Options:")
	for _, p := range res.Options {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

func listOrNone(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, ", ")
}

func listOrAny(s []string) string {
	if len(s) == 0 {
		return "(any)"
	}
	return strings.Join(s, ", ")
}
