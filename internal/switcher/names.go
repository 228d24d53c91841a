package switcher

import (
	"path/filepath"
	"strings"
)

// BaseName returns the lowercase file name of path without its directory or
// final extension. Leading dots are part of the name, so ".bashrc" stays
// ".bashrc" and "foo.test.js" becomes "foo.test".
func BaseName(path string) string {
	name, _ := splitExt(filepath.Base(path))
	return strings.ToLower(name)
}

// splitExt splits a file name into name and extension (with the dot).
func splitExt(name string) (string, string) {
	ext := filepath.Ext(strings.TrimLeft(name, "."))
	return name[:len(name)-len(ext)], ext
}

// IsTestName reports whether baseName starts with any prefix or ends with
// any suffix. baseName must already be lowercase.
func IsTestName(baseName string, prefixes, suffixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(baseName, p) {
			return true
		}
	}
	for _, s := range suffixes {
		if strings.HasSuffix(baseName, s) {
			return true
		}
	}
	return false
}

// FindPotentialBaseNames maps a test name back to the source names it may
// belong to: the name minus each matching suffix, then the name minus each
// matching prefix. Duplicates are kept.
func FindPotentialBaseNames(baseName string, prefixes, suffixes []string) []string {
	var names []string
	for _, s := range suffixes {
		if strings.HasSuffix(baseName, s) {
			names = append(names, baseName[:len(baseName)-len(s)])
		}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(baseName, p) {
			names = append(names, baseName[len(p):])
		}
	}
	return names
}

// FindPotentialTestNames returns every test name a source name could have:
// baseName+suffix for each suffix, then prefix+baseName for each prefix.
func FindPotentialTestNames(baseName string, prefixes, suffixes []string) []string {
	names := make([]string, 0, len(prefixes)+len(suffixes))
	for _, s := range suffixes {
		names = append(names, strings.ToLower(baseName+s))
	}
	for _, p := range prefixes {
		names = append(names, strings.ToLower(p+baseName))
	}
	return names
}

// normalizeExt lowercases an extension and drops one leading dot so that
// "js", ".js" and ".JS" compare equal.
func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.ToLower(ext), ".")
}
