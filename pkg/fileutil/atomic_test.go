package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/testswitch/internal/errors"
)

type settings struct {
	Version  int      `yaml:"version" toml:"version" json:"version"`
	Prefixes []string `yaml:"prefixes" toml:"prefixes" json:"prefixes"`
}

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"text", []byte("prefixes: [test_]\n"), 0o644},
		{"empty", []byte{}, 0o644},
		{"private", []byte("secret"), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")

			require.NoError(t, AtomicWriteFile(path, tt.data, tt.perm))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(tt.data), string(got))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, info.Mode().Perm())
		})
	}
}

func TestAtomicWriteFile_OverwriteExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	require.NoError(t, AtomicWriteFile(path, []byte("new\n"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

func TestAtomicWriteFile_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()

	err := AtomicWriteFile(filepath.Join(dir, "missing", "settings.yaml"), []byte("x"), 0o600)
	require.Error(t, err)

	require.NoError(t, AtomicWriteFile(filepath.Join(dir, "settings.yaml"), []byte("x"), 0o600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestEncode(t *testing.T) {
	v := settings{Version: 1, Prefixes: []string{"test_"}}

	tests := []struct {
		format string
		want   []string
	}{
		{"yaml", []string{"version: 1", "prefixes:", "- test_"}},
		{"yml", []string{"version: 1"}},
		{"toml", []string{"version = 1", "prefixes = ['test_']"}},
		{"json", []string{`"version": 1`, `"test_"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := Encode(tt.format, v)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(string(data), "\n"))
			for _, w := range tt.want {
				assert.Contains(t, string(data), w)
			}
		})
	}
}

func TestEncode_Unknown(t *testing.T) {
	_, err := Encode("ini", settings{})
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestEncode_YAMLPanicRecovered(t *testing.T) {
	_, err := Encode("yaml", map[string]any{"fn": func() {}})
	assert.Error(t, err)
}

func TestAtomicWriteTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	require.NoError(t, AtomicWriteTOML(path, settings{Version: 1, Prefixes: []string{"spec_"}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "prefixes = ['spec_']")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFilePerm, info.Mode().Perm())
}

func TestAtomicWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, AtomicWriteYAML(path, settings{Version: 1, Prefixes: []string{}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: 1\nprefixes: []\n", string(got))
}
