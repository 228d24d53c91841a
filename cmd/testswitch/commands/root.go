// Package commands implements the CLI commands for testswitch.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/cmd"
	"github.com/thoreinstein/testswitch/internal/config"
	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

// EnvDebug turns on debug (1, true) or trace (2) logging when no -v is given.
const EnvDebug = "TESTSWITCH_DEBUG"

// rootOptions holds persistent flag values and per-invocation state.
type rootOptions struct {
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string

	cfg     *config.Config
	cfgErr  error
	logSink io.Closer
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	sw := &switchOptions{}

	root := &cobra.Command{
		Use:   "testswitch [file]",
		Short: "Jump between a source file and its test",
		Long: `testswitch finds the test for a source file, or the source for a test,
from filename conventions such as a "test_" prefix or a "_spec" suffix.

Open documents are searched first; the project folders are walked only when
no open document matches. One match is opened in $EDITOR, several matches
bring up a selection list.

Conventions are read from settings.{yaml,toml,json} in the current directory
or in the testswitch config directory (see 'testswitch config path').`,
		Example: `  # Switch from a source file to its test
  testswitch src/widget.js

  # Let the editor open the result
  testswitch --print --open src/widget.js --open spec/widget_spec.js src/widget.js

  # Show what would be searched
  testswitch resolve src/widget.js

  See Also: testswitch switch, testswitch config init`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.setupLogging(cmd); err != nil {
				return err
			}
			opts.loadConfig(cmd)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logSink != nil {
				_ = opts.logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSwitch(cmd, opts, sw, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv)")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to file in JSON format")
	pf.StringVar(&opts.configFile, "config", "", "settings file (default: ./settings.* or the config directory)")

	addSwitchFlags(root, sw)

	root.Version = cmd.Version
	root.SetVersionTemplate("testswitch version {{.Version}}\n")
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUserError(err, "Run 'testswitch --help' for usage")
	})

	root.AddCommand(
		newSwitchCmd(opts),
		newResolveCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// settings returns the loaded settings, or the load failure as a config error.
func (o *rootOptions) settings() (*config.Config, error) {
	if o.cfgErr != nil {
		return nil, errors.NewConfigError(o.cfgErr)
	}
	return o.cfg, nil
}

func (o *rootOptions) loadConfig(cmd *cobra.Command) {
	config.Init()
	o.cfg, o.cfgErr = config.Load(o.configFile)
	if o.cfgErr == nil {
		logging.FromContext(cmd.Context()).Debug("loaded settings",
			"file", config.FileUsed(),
			"prefixes", o.cfg.Prefixes,
			"suffixes", o.cfg.Suffixes)
	}
}

// setupLogging configures the logger based on verbosity flags and stores it
// in the command context.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	if o.quiet && o.verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}

	var level slog.Level
	if o.quiet {
		level = slog.LevelError
	} else {
		v := o.verbosity
		// CLI flags take precedence over the env var.
		if v == 0 {
			switch os.Getenv(EnvDebug) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(o.logFormat)
	switch format {
	case logging.FormatJSON, logging.FormatText:
	case "":
		format = logging.FormatText
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", o.logFormat), "Use --log-format text or --log-format json")
	}
	primary := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}).Handler()

	handlers := []slog.Handler{primary}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		o.logSink = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	handler := primary
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}
