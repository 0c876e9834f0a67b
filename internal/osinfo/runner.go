package osinfo

import (
	"log/slog"
	"os/exec"

	"github.com/thoreinstein/osdetect/internal/errors"
)

// Runner runs an external command and returns its captured standard output.
//
// Implementations return an error only when the command could not be run at
// all; a non-zero exit status is not an error.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(name string, args ...string) ([]byte, error)

// Run calls f(name, args...).
func (f RunnerFunc) Run(name string, args ...string) ([]byte, error) {
	return f(name, args...)
}

// ExecRunner runs commands with os/exec. It blocks until the child exits;
// there is no timeout.
type ExecRunner struct {
	// Logger receives a debug record for commands that exit non-zero.
	// Nil means slog.Default().
	Logger *slog.Logger
}

var _ Runner = ExecRunner{}

// Run executes name with args and returns stdout.
func (r ExecRunner) Run(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger := r.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("probe exited non-zero",
			"cmd", name,
			"code", exitErr.ExitCode(),
			"stderr", string(exitErr.Stderr))
		return out, nil
	}

	return nil, err
}
