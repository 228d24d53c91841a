package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/paths"
)

func TestConfigList_Defaults(t *testing.T) {
	isolate(t)

	res := run(t, "", "config")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# defaults")
	assert.Contains(t, res.stdout, "version: 1")
	assert.Contains(t, res.stdout, "prefixes: []")
}

func TestConfigList_FromFile(t *testing.T) {
	project(t)

	res := run(t, "", "config", "list")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "settings.yaml")
	assert.Contains(t, res.stdout, "- _spec")
}

func TestConfigInit(t *testing.T) {
	isolate(t)

	res := run(t, "", "config", "init")
	require.NoError(t, res.err)

	target, err := paths.SettingsFile("yaml")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- test_")

	// The written file is picked up by the next invocation.
	res = run(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, target)
	assert.Contains(t, res.stdout, "- _spec")
}

func TestConfigInit_Exists(t *testing.T) {
	isolate(t)

	require.NoError(t, run(t, "", "config", "init").err)

	res := run(t, "", "config", "init")
	require.Error(t, res.err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))

	require.NoError(t, run(t, "", "config", "init", "--force").err)
}

func TestConfigInit_TOMLPath(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "settings.toml")

	res := run(t, "", "config", "init", "--path", target)
	require.NoError(t, res.err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "prefixes = ['test_']")

	res = run(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "- _test")
}

func TestConfigInit_BadFormat(t *testing.T) {
	isolate(t)

	res := run(t, "", "config", "init", "--format", "ini")

	require.Error(t, res.err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))

	var exitErr *errors.ExitError
	require.True(t, errors.As(res.err, &exitErr))
	assert.Equal(t, "Use --format yaml, yml, toml, json", exitErr.Suggestion)
}

func TestConfigInit_JSONPath(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "settings.json")

	res := run(t, "", "config", "init", "--path", target)
	require.NoError(t, res.err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"suffixes"`)

	res = run(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "- _spec")
}

func TestConfigPath(t *testing.T) {
	isolate(t)

	res := run(t, "", "config", "path")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, filepath.Join(paths.ConfigDir(), "settings.{yaml,yml,toml,json}"))
	assert.Contains(t, res.stdout, "In use: (none")
}

func TestConfigValidate(t *testing.T) {
	project(t)

	res := run(t, "", "config", "validate")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "settings.yaml")
	assert.Contains(t, res.stdout, "look good")
}

func TestConfigValidate_Broken(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("settings.yaml", []byte("version: 1\nprefixes: [\"\", test_]\ntest_extensions: [.js]\n"), 0o644))

	res := run(t, "", "config", "validate", "--json")

	require.Error(t, res.err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))
	assert.Contains(t, res.stdout, `"field": "prefixes[0]"`)
	assert.Contains(t, res.stdout, `"severity": "info"`)
}

func TestConfigList_Formats(t *testing.T) {
	project(t)

	res := run(t, "", "config", "list", "--format", "toml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "suffixes = ['_spec']")

	res = run(t, "", "config", "list", "--format", "json")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "{"))
	assert.Contains(t, res.stdout, `"test_extensions": [`)

	res = run(t, "", "config", "list", "--format", "ini")
	require.Error(t, res.err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))
}
