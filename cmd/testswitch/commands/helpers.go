package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/internal/errors"
)

// usageArgs turns positional-argument failures into user errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return errors.NewUserError(err, fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
		}
		return nil
	}
}

// ReportError prints err and, when it carries one, its suggestion.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}

// absPaths makes every non-empty entry absolute, keeping order.
func absPaths(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", p)
		}
		out = append(out, abs)
	}
	return out, nil
}
