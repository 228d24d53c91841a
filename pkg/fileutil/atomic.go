// Package fileutil writes settings files atomically and reads small input
// files with a size cap.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/testswitch/internal/errors"
)

// DefaultFilePerm is the mode used by the encoder helpers.
const DefaultFilePerm os.FileMode = 0o644

// ErrUnknownEncoding is returned by Encode for an unsupported format name.
var ErrUnknownEncoding = errors.New("unknown encoding")

// AtomicWriteFile writes data next to path and renames it into place, so a
// reader never sees a half-written file.
//
// The parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".testswitch-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// Encode marshals v in the named format ("yaml", "yml", "toml" or "json").
// The output always ends in a newline.
func Encode(format string, v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "yml":
		data, err = marshalYAML(v)
	case "toml":
		data, err = marshalTOML(v)
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "marshaling JSON")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", format)
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// AtomicWriteEncoded encodes v in format and writes it atomically.
func AtomicWriteEncoded(path, format string, v any, perm os.FileMode) error {
	data, err := Encode(format, v)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, perm)
}

// AtomicWriteYAML writes v as YAML with DefaultFilePerm.
func AtomicWriteYAML(path string, v any) error {
	return AtomicWriteEncoded(path, "yaml", v, DefaultFilePerm)
}

// AtomicWriteTOML writes v as TOML with DefaultFilePerm.
func AtomicWriteTOML(path string, v any) error {
	return AtomicWriteEncoded(path, "toml", v, DefaultFilePerm)
}

func marshalYAML(v any) (data []byte, err error) {
	// yaml.v3 panics on some unmarshalable values (funcs, channels).
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, errors.Newf("marshaling YAML: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return buf.Bytes(), nil
}

func marshalTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetArraysMultiline(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling TOML")
	}
	return buf.Bytes(), nil
}
