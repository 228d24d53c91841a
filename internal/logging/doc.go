// Package logging provides structured logging for the testswitch CLI using slog.
//
// Logs go to stderr so that stdout stays reserved for the resolved path
// (the --print mode editors rely on). Text output is colorized on a TTY;
// JSON output is available for editor plugins that capture stderr.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("resolved", "options", 2)
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
