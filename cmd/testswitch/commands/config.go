package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/internal/config"
	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/paths"
	"github.com/thoreinstein/testswitch/internal/validator"
	"github.com/thoreinstein/testswitch/pkg/fileutil"
)

// starterConfig is written by 'config init'.
func starterConfig() config.Config {
	return config.Config{
		Version:          config.SchemaVersion,
		Prefixes:         []string{"test_"},
		Suffixes:         []string{"_test", "_spec"},
		SourceExtensions: []string{},
		TestExtensions:   []string{},
	}
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage testswitch settings",
		Long: `Manage the filename conventions testswitch uses.

Without a subcommand, prints the effective settings.`,
		Example: `  # Show effective settings
  testswitch config

  # Create a starter settings file
  testswitch config init

See Also: testswitch config path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd, root, "yaml")
		},
	}

	var listFormat string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the effective settings",
		Long: `Print the settings after merging defaults, the settings file and
TESTSWITCH_* environment variables.`,
		Example: `  # YAML (default)
  testswitch config list

  # Same settings as TOML, ready to paste into settings.toml
  testswitch config list --format toml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigList(cmd, root, listFormat)
		},
	}
	listCmd.Flags().StringVar(&listFormat, "format", "yaml", "output format: yaml, toml, json")

	initOpts := &configInitOptions{}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter settings file",
		Long: `Write a settings file with common test conventions ("test_" prefix,
"_test" and "_spec" suffixes) to the testswitch config directory.`,
		Example: `  # YAML in the config directory
  testswitch config init

  # TOML in the current project
  testswitch config init --format toml --path ./settings.toml

See Also: testswitch config path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, initOpts)
		},
	}
	initCmd.Flags().StringVar(&initOpts.format, "format", "yaml", "file format: yaml, toml, json")
	initCmd.Flags().BoolVar(&initOpts.force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&initOpts.path, "path", "", "write to this file instead of the config directory")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print where settings are read from",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigPath(cmd)
		},
	}

	var validateJSON bool
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the settings for mistakes",
		Long: `Check the settings file for entries that are refused (blank entries,
unknown version) and for entries that load but can never match, such as
duplicates or multi-part extensions.`,
		Example: `  # Check the effective settings
  testswitch config validate

  # Check a specific file
  testswitch --config ./settings.toml config validate --json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, root, validateJSON)
		},
	}
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")

	configCmd.AddCommand(listCmd, initCmd, pathCmd, validateCmd)
	return configCmd
}

func runConfigList(cmd *cobra.Command, root *rootOptions, format string) error {
	if !paths.ValidFormat(format) {
		return errors.NewUserError(errors.Wrapf(paths.ErrUnsupportedFormat, "%q", format), formatHint())
	}

	cfg, err := root.settings()
	if err != nil {
		return err
	}

	data, err := fileutil.Encode(format, cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	out := cmd.OutOrStdout()
	// JSON has no comment syntax.
	if format != "json" {
		if used := config.FileUsed(); used != "" {
			fmt.Fprintf(out, "# %s\n", used)
		} else {
			fmt.Fprintln(out, "# defaults (no settings file found)")
		}
	}
	_, err = out.Write(data)
	return errors.Wrap(err, "writing config")
}

type configInitOptions struct {
	format string
	force  bool
	path   string
}

func runConfigInit(cmd *cobra.Command, opts *configInitOptions) error {
	target := opts.path
	format := opts.format
	if target == "" {
		var err error
		target, err = paths.SettingsFile(format)
		if err != nil {
			return errors.NewUserError(err, formatHint())
		}
	} else if !cmd.Flags().Changed("format") {
		if ext := filepath.Ext(target); ext != "" {
			format = ext[1:]
		}
	}
	if !paths.ValidFormat(format) {
		return errors.NewUserError(errors.Wrapf(paths.ErrUnsupportedFormat, "%q", format), formatHint())
	}

	if _, err := os.Stat(target); err == nil && !opts.force {
		return errors.NewUserError(errors.Newf("%s already exists", target), "Use --force to overwrite")
	}

	if err := paths.EnsureDir(filepath.Dir(target), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "Check directory permissions")
	}
	if err := writeSettings(target, format, starterConfig()); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing settings file"), "Check directory permissions")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
	return nil
}

// writeSettings writes cfg to target in the given settings format.
func writeSettings(target, format string, cfg config.Config) error {
	switch format {
	case "toml":
		return fileutil.AtomicWriteTOML(target, cfg)
	case "json":
		return fileutil.AtomicWriteEncoded(target, format, cfg, fileutil.DefaultFilePerm)
	default:
		return fileutil.AtomicWriteYAML(target, cfg)
	}
}

func formatHint() string {
	return "Use --format " + strings.Join(paths.Formats(), ", ")
}

func runConfigValidate(cmd *cobra.Command, root *rootOptions, asJSON bool) error {
	config.Init()
	cfg, err := config.Read(root.configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}

	result := validator.CheckConventions(cfg)
	result.Source = config.FileUsed()

	format := validator.FormatText
	if asJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewConfigError(errors.Newf("%d invalid setting(s)", len(result.BySeverity(validator.SeverityError))))
	}
	return nil
}

func runConfigPath(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Search order:")
	for _, dir := range paths.SearchDirs() {
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = dir
		}
		fmt.Fprintf(out, "  %s\n", filepath.Join(abs, paths.SettingsName+".{"+strings.Join(paths.Formats(), ",")+"}"))
	}
	if used := config.FileUsed(); used != "" {
		fmt.Fprintf(out, "In use: %s\n", used)
	} else {
		fmt.Fprintln(out, "In use: (none, defaults apply)")
	}
	return nil
}
