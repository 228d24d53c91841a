// Package git asks git where a project's work tree begins.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotRepository indicates the directory is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// TopLevel returns the root of the work tree containing dir.
// Returns ErrNotRepository when dir is outside any work tree or git is
// missing.
func TopLevel(ctx context.Context, dir string) (string, error) {
	if !Available() {
		return "", errors.Wrap(ErrNotRepository, "git not found on PATH")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Wrapf(ErrNotRepository, "%s: %s", dir, msg)
	}

	top := strings.TrimSpace(stdout.String())
	if top == "" {
		return "", errors.Wrapf(ErrNotRepository, "%s: empty toplevel", dir)
	}
	return filepath.FromSlash(top), nil
}
