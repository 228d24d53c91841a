// Package workspace describes the editor state a switch runs against: the
// active document, the documents open alongside it, and the project
// folders to search.
package workspace

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/git"
	"github.com/thoreinstein/testswitch/internal/logging"
	"github.com/thoreinstein/testswitch/pkg/fileutil"
)

// StdinName selects standard input for LoadDocumentList.
const StdinName = "-"

// Workspace is the host state handed to the switcher.
type Workspace struct {
	Active    string
	Documents []string
	Folders   []string

	// Logger receives debug records about skipped directories. Nil discards.
	Logger *slog.Logger
}

// ActiveDocument returns the active document, or false when none is set.
func (w *Workspace) ActiveDocument() (string, bool) {
	return w.Active, w.Active != ""
}

// OpenDocuments yields the open documents in order, skipping unnamed ones.
func (w *Workspace) OpenDocuments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, doc := range w.Documents {
			if doc == "" {
				continue
			}
			if !yield(doc) {
				return
			}
		}
	}
}

// FolderPaths yields every non-directory entry under each folder, folder by
// folder. Within a directory its files come first, in lexical order, then
// each subdirectory in turn.
func (w *Workspace) FolderPaths() iter.Seq[string] {
	return Walk(w.Folders, w.Logger)
}

// Walk lazily lists the files below roots, top-down: a directory's own
// files are yielded before any of its subdirectories are entered.
// Symlinked directories are neither yielded nor descended, which also rules
// out cycles. Unreadable directories are skipped.
func Walk(roots []string, logger *slog.Logger) iter.Seq[string] {
	if logger == nil {
		logger = logging.NewDiscard()
	}

	return func(yield func(string) bool) {
		for _, root := range roots {
			if !walkDir(root, logger, yield) {
				return
			}
		}
	}
}

// walkDir reports false once yield asks to stop.
func walkDir(dir string, logger *slog.Logger, yield func(string) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("skipping unreadable directory", "path", dir, "error", err)
		return true
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, path)
		case entry.Type()&fs.ModeSymlink != 0 && isDir(path):
			// not followed
		default:
			if !yield(path) {
				return false
			}
		}
	}

	for _, sub := range subdirs {
		if !walkDir(sub, logger, yield) {
			return false
		}
	}
	return true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DefaultFolders picks the search root when the caller names none: the git
// work tree holding active, or the working directory.
func DefaultFolders(ctx context.Context, active string) ([]string, error) {
	if active != "" {
		if top, err := git.TopLevel(ctx, filepath.Dir(active)); err == nil {
			return []string{top}, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}
	return []string{cwd}, nil
}

// ReadDocumentList parses one path per line, ignoring blank lines and lines
// starting with '#'.
func ReadDocumentList(r io.Reader) ([]string, error) {
	var docs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), fileutil.MaxFileSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		docs = append(docs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading document list")
	}
	return docs, nil
}

// LoadDocumentList reads a document list from name, or from stdin when name
// is StdinName.
func LoadDocumentList(name string, stdin io.Reader) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if name == StdinName {
		data, err = fileutil.ReadAllWithLimit(stdin)
	} else {
		data, err = fileutil.ReadFileWithLimit(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading document list %s", name)
	}
	return ReadDocumentList(strings.NewReader(string(data)))
}
