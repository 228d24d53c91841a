package switcher

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/testswitch/internal/config"
)

// trackedSeq wraps a path list and records whether it was ever iterated.
type trackedSeq struct {
	paths   []string
	started bool
}

func (s *trackedSeq) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.started = true
		for _, p := range s.paths {
			if !yield(p) {
				return
			}
		}
	}
}

func TestFindPossiblePaths(t *testing.T) {
	paths := []string{
		"/p/widget_spec.js",
		"/p/widget_spec.ts",
		"/p/lib/Widget_Spec.JS",
		"/p/widget.js",
		"/p/widget_spec",
		"/p/other_spec.js",
	}

	tests := []struct {
		name       string
		names      []string
		extensions []string
		want       []string
	}{
		{
			name:  "no extension filter accepts any extension",
			names: []string{"widget_spec"},
			want:  []string{"/p/widget_spec.js", "/p/widget_spec.ts", "/p/lib/Widget_Spec.JS", "/p/widget_spec"},
		},
		{
			name:       "extension filter is case-insensitive",
			names:      []string{"widget_spec"},
			extensions: []string{"js"},
			want:       []string{"/p/widget_spec.js", "/p/lib/Widget_Spec.JS"},
		},
		{
			name:       "leading dot in configured extension",
			names:      []string{"widget_spec"},
			extensions: []string{".ts"},
			want:       []string{"/p/widget_spec.ts"},
		},
		{
			name:       "extensionless path never passes a non-empty filter",
			names:      []string{"widget_spec"},
			extensions: []string{"js", "ts"},
			want:       []string{"/p/widget_spec.js", "/p/widget_spec.ts", "/p/lib/Widget_Spec.JS"},
		},
		{
			name:  "several names keep input order",
			names: []string{"other_spec", "widget"},
			want:  []string{"/p/widget.js", "/p/other_spec.js"},
		},
		{
			name:  "no names",
			names: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPossiblePaths(slices.Values(paths), tt.names, tt.extensions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindOptions_DocumentsWinOverFolders(t *testing.T) {
	docs := &trackedSeq{paths: []string{"/p/foo.py", "/p/unrelated.py"}}
	folders := &trackedSeq{paths: []string{"/p/other/foo.py"}}

	got := FindOptions([]string{"foo"}, nil, docs.Seq(), folders.Seq())

	assert.Equal(t, []string{"/p/foo.py"}, got)
	assert.True(t, docs.started)
	assert.False(t, folders.started, "folder walk must not run when an open document matches")
}

func TestFindOptions_FallsBackToFolders(t *testing.T) {
	docs := &trackedSeq{paths: []string{"/p/unrelated.py"}}
	folders := &trackedSeq{paths: []string{"/p/a/foo.py", "/p/b/foo.txt", "/p/b/foo.py"}}

	got, phase := findOptions([]string{"foo"}, []string{"py"}, docs.Seq(), folders.Seq())

	assert.Equal(t, []string{"/p/a/foo.py", "/p/b/foo.py"}, got)
	assert.Equal(t, PhaseFolders, phase)
	assert.True(t, folders.started)
}

func TestFindOptions_NothingFound(t *testing.T) {
	docs := &trackedSeq{paths: []string{"/p/a.py"}}
	folders := &trackedSeq{paths: []string{"/p/b.py"}}

	got, phase := findOptions([]string{"foo"}, nil, docs.Seq(), folders.Seq())
	assert.Empty(t, got)
	assert.Equal(t, PhaseNone, phase)
}

func TestFindOptions_NoCandidatesSkipsSearch(t *testing.T) {
	docs := &trackedSeq{paths: []string{"/p/a.py"}}
	folders := &trackedSeq{paths: []string{"/p/b.py"}}

	got := FindOptions(nil, nil, docs.Seq(), folders.Seq())
	assert.Empty(t, got)
	assert.False(t, docs.started)
	assert.False(t, folders.started)
}

func TestFindOptions_NilSources(t *testing.T) {
	assert.Empty(t, FindOptions([]string{"foo"}, nil, nil, nil))
}

func TestNewPlan(t *testing.T) {
	cfg := &config.Config{
		Version:          1,
		Prefixes:         []string{"test_"},
		Suffixes:         []string{"_spec"},
		SourceExtensions: []string{"py"},
		TestExtensions:   []string{"js"},
	}

	t.Run("test file maps to source names and source extensions", func(t *testing.T) {
		p := NewPlan("/p/tests/Test_Foo.py", cfg)
		assert.True(t, p.IsTest)
		assert.Equal(t, "test_foo", p.BaseName)
		assert.Equal(t, []string{"foo"}, p.Candidates)
		assert.Equal(t, []string{"py"}, p.Extensions)
	})

	t.Run("source file maps to test names and test extensions", func(t *testing.T) {
		p := NewPlan("/p/widget.js", cfg)
		assert.False(t, p.IsTest)
		assert.Equal(t, []string{"widget_spec", "test_widget"}, p.Candidates)
		assert.Equal(t, []string{"js"}, p.Extensions)
	})

	t.Run("empty config yields empty, non-nil lists", func(t *testing.T) {
		p := NewPlan("/p/widget.js", &config.Config{Version: 1})
		require.NotNil(t, p.Candidates)
		require.NotNil(t, p.Extensions)
		assert.Empty(t, p.Candidates)
		assert.Empty(t, p.Extensions)
	})
}

func TestExamples(t *testing.T) {
	t.Run("test_foo.py with prefix test_", func(t *testing.T) {
		cfg := &config.Config{Version: 1, Prefixes: []string{"test_"}}
		p := NewPlan("test_foo.py", cfg)
		assert.True(t, p.IsTest)
		assert.Equal(t, []string{"foo"}, p.Candidates)
	})

	t.Run("widget.js with suffix _spec and js tests", func(t *testing.T) {
		cfg := &config.Config{Version: 1, Suffixes: []string{"_spec"}, TestExtensions: []string{"js"}}
		p := NewPlan("widget.js", cfg)
		assert.Equal(t, []string{"widget_spec"}, p.Candidates)

		paths := []string{"/p/widget_spec.ts", "/p/widget_spec.js", "/p/widget.js"}
		got := FindOptions(p.Candidates, p.Extensions, slices.Values(paths), nil)
		assert.Equal(t, []string{"/p/widget_spec.js"}, got)
	})

	t.Run("foo.py and foo.pyi both open", func(t *testing.T) {
		docs := []string{"/p/foo.py", "/p/foo.pyi"}
		got := FindOptions([]string{"foo"}, nil, slices.Values(docs), nil)
		assert.Equal(t, docs, got)
	})

	t.Run("no conventions configured", func(t *testing.T) {
		cfg := &config.Config{Version: 1}
		p := NewPlan("foo.py", cfg)
		assert.False(t, p.IsTest)
		assert.Empty(t, p.Candidates)

		docs := []string{"/p/foo.py", "/p/foo_test.py"}
		assert.Empty(t, FindOptions(p.Candidates, p.Extensions, slices.Values(docs), slices.Values(docs)))
	})
}
