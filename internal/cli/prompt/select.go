// Package prompt asks the user to choose between candidate paths and shows
// informational messages.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

// ErrNoPaths is returned when there is nothing to choose from.
var (
	ErrNoPaths          = errors.New("no paths to select from")
	ErrInvalidSelection = errors.New("invalid selection")
)

// ListSelector prints a numbered list and reads the choice from a reader.
type ListSelector struct {
	reader io.Reader
	writer io.Writer
}

// NewListSelector creates a ListSelector reading r and prompting on w.
func NewListSelector(r io.Reader, w io.Writer) *ListSelector {
	return &ListSelector{reader: r, writer: w}
}

// SelectPath prompts for one of paths.
//
// Returns:
//   - ErrNoPaths if the list is empty
//   - the only path, without prompting, if there is one
//   - the first path on an empty answer
//   - errors.ErrSelectionCancelled on EOF or "q"
//   - ErrInvalidSelection if the answer is not a listed number
func (s *ListSelector) SelectPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoPaths
	}
	if len(paths) == 1 {
		return paths[0], nil
	}

	fmt.Fprintln(s.writer, "Multiple matches found:")
	for i, p := range paths {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, p)
	}
	fmt.Fprint(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return "", errors.ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "":
		return paths[0], nil
	case "q", "quit":
		return "", errors.ErrSelectionCancelled
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if n < 1 || n > len(paths) {
		return "", errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(paths))
	}
	return paths[n-1], nil
}

// FirstSelector always takes the first path.
type FirstSelector struct{}

// SelectPath returns paths[0], or ErrNoPaths.
func (FirstSelector) SelectPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoPaths
	}
	return paths[0], nil
}

// PathSelector is satisfied by every selector in this package.
type PathSelector interface {
	SelectPath(paths []string) (string, error)
}

// NewSelector returns the fuzzy finder when in and out are both terminals,
// and the numbered list otherwise.
func NewSelector(in io.Reader, out io.Writer) PathSelector {
	if logging.IsTTY(in) && logging.IsTTY(out) {
		return NewFuzzySelector()
	}
	return NewListSelector(in, out)
}
