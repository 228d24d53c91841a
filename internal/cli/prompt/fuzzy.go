package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/testswitch/internal/errors"
)

type findFunc func(paths []string, item func(int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzySelector picks a path with an interactive fuzzy finder.
type FuzzySelector struct {
	find findFunc
}

// NewFuzzySelector creates a FuzzySelector on the terminal.
func NewFuzzySelector() *FuzzySelector {
	return &FuzzySelector{find: func(paths []string, item func(int) string, opts ...fuzzyfinder.Option) (int, error) {
		return fuzzyfinder.Find(paths, item, opts...)
	}}
}

// SelectPath opens the finder over paths. Aborting the finder returns
// errors.ErrSelectionCancelled.
func (s *FuzzySelector) SelectPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoPaths
	}
	if len(paths) == 1 {
		return paths[0], nil
	}

	idx, err := s.find(
		paths,
		func(i int) string { return paths[i] },
		fuzzyfinder.WithHeader("Switch to:"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 || i >= len(paths) {
				return ""
			}
			return preview(paths[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errors.ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "fuzzy selection failed")
	}
	return paths[idx], nil
}

func preview(path string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Path: %s\n", path)
	fmt.Fprintf(&b, "Dir:  %s\n", filepath.Dir(path))
	if info, err := os.Stat(path); err == nil {
		fmt.Fprintf(&b, "Size: %d bytes\n", info.Size())
		fmt.Fprintf(&b, "Modified: %s\n", info.ModTime().Format("2006-01-02 15:04"))
	}
	return b.String()
}
