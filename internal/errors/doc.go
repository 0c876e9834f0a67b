// Package errors provides error handling conventions for the osdetect CLI.
//
// The package re-exports the wrapping helpers of github.com/cockroachdb/errors
// so that callers import a single errors package, defines sentinel errors for
// CLI-level failures, and provides the ExitError type that carries an exit
// code and an optional suggestion.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unsupported platform, invalid flags or config)
//   - ExitSystem (2): System-related error (a probe command could not be launched,
//     a system file could not be read)
//
// # ExitError
//
// [ExitError] wraps an underlying error and works with [errors.Is] and [errors.As]:
//
//	err := errors.NewUserError(errors.ErrInvalidPlatform, "Use one of: windows, linux, macos")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
