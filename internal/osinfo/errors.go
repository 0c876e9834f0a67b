package osinfo

import (
	"github.com/thoreinstein/osdetect/internal/errors"
)

// Kind classifies a detection failure.
type Kind int

const (
	// KindCommandFailed means a probe command could not be launched or a
	// required system file could not be read.
	KindCommandFailed Kind = iota + 1

	// KindUnsupportedOS means the platform tag is not one of the supported families.
	KindUnsupportedOS

	// KindParseError means probe output existed but had an unexpected shape.
	KindParseError
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommandFailed:
		return "command_failed"
	case KindUnsupportedOS:
		return "unsupported_os"
	case KindParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Source tells which facility a KindCommandFailed error came from.
type Source string

const (
	// SourceCommand marks a probe command that could not be launched.
	SourceCommand Source = "command"

	// SourceFile marks a system file that could not be read.
	SourceFile Source = "file"
)

// Sentinel errors matched by [*Error] through errors.Is.
var (
	ErrCommandFailed = errors.New("command execution failed")
	ErrUnsupportedOS = errors.New("unsupported operating system")
	ErrParse         = errors.New("failed to parse system information")
)

// Error is the single error type returned by this package.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Source is set for KindCommandFailed.
	Source Source

	// Target is the command line or file path involved, if any.
	Target string

	// Detail is the human-readable description of the failure.
	Detail string

	// Tag is the unrecognized platform tag for KindUnsupportedOS, verbatim.
	Tag string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnsupportedOS:
		return ErrUnsupportedOS.Error() + ": " + e.Tag
	case KindParseError:
		return ErrParse.Error() + ": " + e.Detail
	default:
		return ErrCommandFailed.Error() + ": " + e.Detail
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrCommandFailed:
		return e.Kind == KindCommandFailed
	case ErrUnsupportedOS:
		return e.Kind == KindUnsupportedOS
	case ErrParse:
		return e.Kind == KindParseError
	}
	return false
}

func commandError(cmdline string, err error) *Error {
	return &Error{
		Kind:   KindCommandFailed,
		Source: SourceCommand,
		Target: cmdline,
		Detail: err.Error(),
		Err:    err,
	}
}

func fileError(path string, err error) *Error {
	return &Error{
		Kind:   KindCommandFailed,
		Source: SourceFile,
		Target: path,
		Detail: err.Error(),
		Err:    err,
	}
}

func unsupportedError(tag string) *Error {
	return &Error{Kind: KindUnsupportedOS, Tag: tag}
}

func parseError(detail string) *Error {
	return &Error{Kind: KindParseError, Detail: detail}
}
