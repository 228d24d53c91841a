// Package config loads the testswitch naming conventions using Viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TESTSWITCH"

// SchemaVersion is the only settings file version Load accepts.
const SchemaVersion = 1

// Setting keys.
const (
	KeyVersion          = "version"
	KeyPrefixes         = "prefixes"
	KeySuffixes         = "suffixes"
	KeySourceExtensions = "source_extensions"
	KeyTestExtensions   = "test_extensions"
)

// Config holds the filename conventions used to pair sources with tests.
// All list entries are lowercase once returned from Load.
type Config struct {
	Version          int      `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	Prefixes         []string `mapstructure:"prefixes" yaml:"prefixes" toml:"prefixes" json:"prefixes"`
	Suffixes         []string `mapstructure:"suffixes" yaml:"suffixes" toml:"suffixes" json:"suffixes"`
	SourceExtensions []string `mapstructure:"source_extensions" yaml:"source_extensions" toml:"source_extensions" json:"source_extensions"`
	TestExtensions   []string `mapstructure:"test_extensions" yaml:"test_extensions" toml:"test_extensions" json:"test_extensions"`
}

// ListKeys returns the four convention keys in display order.
func ListKeys() []string {
	return []string{KeyPrefixes, KeySuffixes, KeySourceExtensions, KeyTestExtensions}
}

// Init resets Viper and registers search paths, env support and defaults.
// Call this once per invocation before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.SettingsName)

	// Search paths (in order of precedence)
	for _, dir := range paths.SearchDirs() {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, SchemaVersion)
	for _, key := range ListKeys() {
		viper.SetDefault(key, []string{})
	}
}

// Load reads the settings file and validates it.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, the default locations are searched and a
// missing file yields empty conventions.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Mark(errs[0], errors.ErrInvalidConfig), "validating config")
	}
	return cfg, nil
}

// Read is Load without validation, for reporting on a broken settings file.
func Read(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	cfg := &Config{
		Version:          viper.GetInt(KeyVersion),
		Prefixes:         stringList(KeyPrefixes),
		Suffixes:         stringList(KeySuffixes),
		SourceExtensions: stringList(KeySourceExtensions),
		TestExtensions:   stringList(KeyTestExtensions),
	}
	cfg.Normalize()
	return cfg, nil
}

// FileUsed returns the settings file Viper read, or "" when defaults apply.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Normalize case-folds every convention entry to lowercase in place.
func (c *Config) Normalize() {
	lower := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToLower(s)
		}
		return out
	}
	c.Prefixes = lower(c.Prefixes)
	c.Suffixes = lower(c.Suffixes)
	c.SourceExtensions = lower(c.SourceExtensions)
	c.TestExtensions = lower(c.TestExtensions)
}

// stringList reads a list setting. File values arrive as lists; environment
// values arrive as a single string split on commas, or on whitespace when
// there are no commas.
func stringList(key string) []string {
	switch v := viper.Get(key).(type) {
	case nil:
		return []string{}
	case string:
		return splitList(v)
	default:
		return viper.GetStringSlice(key)
	}
}

func splitList(s string) []string {
	if !strings.Contains(s, ",") {
		return strings.Fields(s)
	}
	out := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
