// Package logging provides structured logging for the osdetect CLI using slog.
//
// The package supports text and JSON output, a colorized text handler for
// terminals, a fan-out handler for writing to a log file alongside the
// console, and helpers for testing. Verbosity flags map onto levels with
// [LevelFromVerbosity]; [LevelTrace] sits below Debug and is used for raw
// probe output.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("detected", "name", info.Name)
//
// # Testing
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//	}
package logging
