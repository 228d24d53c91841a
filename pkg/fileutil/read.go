package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/testswitch/internal/errors"
)

// MaxFileSize caps how much ReadFileWithLimit and ReadAllWithLimit accept.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that an input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads path, failing with ErrFileTooLarge past MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return ReadAllWithLimit(f)
}

// ReadAllWithLimit drains r, failing with ErrFileTooLarge past MaxFileSize.
// Used for stdin, where no size is known up front.
func ReadAllWithLimit(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
