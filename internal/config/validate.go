package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/testswitch/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not one we understand.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrBlankEntry indicates an empty string in a convention list.
	ErrBlankEntry = errors.New("blank entry")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version))
	}

	// A blank prefix or suffix would classify every file as a test.
	lists := []struct {
		key    string
		values []string
	}{
		{KeyPrefixes, cfg.Prefixes},
		{KeySuffixes, cfg.Suffixes},
		{KeySourceExtensions, cfg.SourceExtensions},
		{KeyTestExtensions, cfg.TestExtensions},
	}
	for _, l := range lists {
		for i, v := range l.values {
			if strings.TrimSpace(v) == "" {
				errs = append(errs, &FieldError{Field: l.key, Index: i, Err: ErrBlankEntry})
			}
		}
	}

	return errs
}

// FieldError reports a problem with one entry of a list setting.
type FieldError struct {
	Field string
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
