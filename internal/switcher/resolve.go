package switcher

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/testswitch/internal/config"
)

// Phase names the path source that produced a set of options.
type Phase string

const (
	PhaseNone      Phase = "none"
	PhaseDocuments Phase = "documents"
	PhaseFolders   Phase = "folders"
)

// Plan is everything derived from the active document before searching.
type Plan struct {
	// Active is the path the plan was built from.
	Active string `json:"active"`
	// BaseName is the lowercase name without directory or extension.
	BaseName string `json:"base_name"`
	// IsTest reports whether the active document is a test.
	IsTest bool `json:"is_test"`
	// Candidates are the counterpart base names to look for, in search order.
	Candidates []string `json:"candidates"`
	// Extensions is the allow-list for the counterpart; empty accepts any.
	Extensions []string `json:"extensions"`
}

// NewPlan classifies activePath and derives the counterpart names.
// A test maps to source names filtered by source extensions; a source maps
// to test names filtered by test extensions.
func NewPlan(activePath string, cfg *config.Config) Plan {
	base := BaseName(activePath)
	p := Plan{
		Active:   activePath,
		BaseName: base,
		IsTest:   IsTestName(base, cfg.Prefixes, cfg.Suffixes),
	}
	if p.IsTest {
		p.Candidates = FindPotentialBaseNames(base, cfg.Prefixes, cfg.Suffixes)
		p.Extensions = cfg.SourceExtensions
	} else {
		p.Candidates = FindPotentialTestNames(base, cfg.Prefixes, cfg.Suffixes)
		p.Extensions = cfg.TestExtensions
	}
	if p.Candidates == nil {
		p.Candidates = []string{}
	}
	if p.Extensions == nil {
		p.Extensions = []string{}
	}
	return p
}

// FindPossiblePaths returns, in input order, every path whose lowercase base
// name is one of names and whose extension is in extensions. An empty
// extensions list accepts any extension.
func FindPossiblePaths(paths iter.Seq[string], names, extensions []string) []string {
	nameSet := make(map[string]struct{}, len(names))
	for _, n := range names {
		nameSet[n] = struct{}{}
	}
	extSet := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		extSet[normalizeExt(e)] = struct{}{}
	}

	var matches []string
	for path := range paths {
		name, ext := splitExt(filepath.Base(path))
		if _, ok := nameSet[strings.ToLower(name)]; !ok {
			continue
		}
		if len(extSet) > 0 {
			if _, ok := extSet[normalizeExt(ext)]; !ok {
				continue
			}
		}
		matches = append(matches, path)
	}
	return matches
}

// FindOptions searches documents first and only walks folders when no open
// document matches. The folders sequence is never started otherwise.
func FindOptions(names, extensions []string, documents, folders iter.Seq[string]) []string {
	options, _ := findOptions(names, extensions, documents, folders)
	return options
}

func findOptions(names, extensions []string, documents, folders iter.Seq[string]) ([]string, Phase) {
	if len(names) == 0 {
		return nil, PhaseNone
	}
	if documents != nil {
		if options := FindPossiblePaths(documents, names, extensions); len(options) > 0 {
			return options, PhaseDocuments
		}
	}
	if folders != nil {
		if options := FindPossiblePaths(folders, names, extensions); len(options) > 0 {
			return options, PhaseFolders
		}
	}
	return nil, PhaseNone
}
