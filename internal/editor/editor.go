// Package editor opens the resolved file for the user, either in a terminal
// editor or by printing its path for the calling editor integration.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

// EnvEditor overrides $EDITOR and $VISUAL for testswitch only.
const EnvEditor = "TESTSWITCH_EDITOR"

// ErrEmptyCommand is returned when the editor setting has no program name.
var ErrEmptyCommand = errors.New("empty editor command")

// Opener launches an editor process on a path.
type Opener struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New returns an Opener attached to the process's standard streams.
func New(ctx context.Context) *Opener {
	return &Opener{ctx: ctx, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Open runs the detected editor with path as its last argument and waits
// for it to exit.
func (o *Opener) Open(path string) error {
	argv, err := splitCommand(detectEditor())
	if err != nil {
		return err
	}
	argv = append(argv, path)

	logging.FromContext(o.ctx).Debug("launching editor", "argv", argv)

	cmd := exec.CommandContext(o.ctx, argv[0], argv[1:]...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// PrintOpener "opens" a path by writing it on its own line.
type PrintOpener struct {
	W io.Writer
}

// Open writes path to W.
func (p PrintOpener) Open(path string) error {
	if _, err := fmt.Fprintln(p.W, path); err != nil {
		return errors.Wrap(err, "writing path")
	}
	return nil
}

// detectEditor picks the editor command.
// Fallback chain: $TESTSWITCH_EDITOR → $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}

// splitCommand breaks an editor setting such as "code --wait" into argv.
func splitCommand(s string) ([]string, error) {
	argv := strings.Fields(s)
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}
