package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/testswitch/internal/config"
	"github.com/thoreinstein/testswitch/internal/errors"
)

// CheckConventions reviews cfg. Everything config.Validate refuses becomes an
// error; the rest are warnings and notes about entries that can never match
// or that are rewritten before matching.
func CheckConventions(cfg *config.Config) *Result {
	r := &Result{}

	for _, err := range config.Validate(cfg) {
		var fe *config.FieldError
		if errors.As(err, &fe) {
			r.AddError(fmt.Sprintf("%s[%d]", fe.Field, fe.Index), fe.Err.Error(), nil)
			continue
		}
		r.AddError(config.KeyVersion, err.Error(), nil)
	}
	if cfg == nil {
		return r
	}

	if len(cfg.Prefixes) == 0 && len(cfg.Suffixes) == 0 {
		r.AddWarning("", "no prefixes or suffixes configured; every file is a source and no test names are generated", nil)
	}

	checkAffixes(r, config.KeyPrefixes, cfg.Prefixes)
	checkAffixes(r, config.KeySuffixes, cfg.Suffixes)
	checkExtensions(r, config.KeySourceExtensions, cfg.SourceExtensions)
	checkExtensions(r, config.KeyTestExtensions, cfg.TestExtensions)

	return r
}

func checkAffixes(r *Result, key string, values []string) {
	seen := make(map[string]int, len(values))
	for i, v := range values {
		field := fmt.Sprintf("%s[%d]", key, i)
		if first, dup := seen[v]; dup {
			r.AddWarning(field, fmt.Sprintf("duplicate of %s[%d]; candidates will repeat", key, first), v)
		} else {
			seen[v] = i
		}
		if strings.ContainsAny(v, `/\`) {
			r.AddWarning(field, "contains a path separator and can never match a file name", v)
		}
		if v != strings.TrimSpace(v) {
			r.AddWarning(field, "has surrounding whitespace", v)
		}
	}
}

func checkExtensions(r *Result, key string, values []string) {
	seen := make(map[string]int, len(values))
	for i, v := range values {
		field := fmt.Sprintf("%s[%d]", key, i)
		bare := strings.TrimPrefix(v, ".")
		if first, dup := seen[bare]; dup {
			r.AddWarning(field, fmt.Sprintf("duplicate of %s[%d]", key, first), v)
		} else {
			seen[bare] = i
		}
		switch {
		case bare == "" && v != "":
			r.AddWarning(field, "is only a dot and matches files without an extension", v)
		case strings.Contains(bare, "."):
			r.AddWarning(field, "only the last extension is compared, so a multi-part extension never matches", v)
		case strings.HasPrefix(v, "."):
			r.AddInfo(field, "leading dot is ignored", v)
		}
	}
}
