// Package errors provides error handling conventions for the testswitch CLI.
//
// The package re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so that the rest of the module imports a
// single errors package, and adds sentinel errors plus an ExitError type for
// CLI exit code handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNoActiveDocument) {
//	    // the command is disabled
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, editor launch, etc.)
//
// Note that "no counterpart found" is not an error at all: it is reported as
// an informational message and the process exits with ExitSuccess.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your settings file")
//	os.Exit(errors.ExitCode(err))
package errors
