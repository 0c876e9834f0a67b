package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
	"github.com/thoreinstein/osdetect/internal/render"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a schema version other than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &FieldError{
			Field: "version",
			Value: fmt.Sprint(cfg.Version),
			Err:   ErrUnsupportedVersion,
		})
	}

	if cfg.Platform != "" && !osinfo.ValidPlatform(cfg.Platform) {
		errs = append(errs, &FieldError{
			Field: "platform",
			Value: cfg.Platform,
			Err:   errors.ErrInvalidPlatform,
		})
	}

	if cfg.OSReleasePath != "" {
		if err := validatePath(cfg.OSReleasePath); err != nil {
			errs = append(errs, &FieldError{
				Field: "os_release_path",
				Value: cfg.OSReleasePath,
				Err:   err,
			})
		}
	}

	if cfg.Output != "" {
		if _, err := render.ParseFormat(cfg.Output); err != nil {
			errs = append(errs, &FieldError{
				Field: "output",
				Value: cfg.Output,
				Err:   errors.ErrInvalidFormat,
			})
		}
	}

	switch logging.Format(cfg.LogFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, &FieldError{
			Field: "log_format",
			Value: cfg.LogFormat,
			Err:   ErrInvalidLogFormat,
		})
	}

	return errs
}

// validatePath checks that a path is syntactically usable.
// It does not check that the path exists.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || slices.Contains([]string{"..", string(filepath.Separator)}, cleaned) {
		return ErrInvalidPath
	}

	return nil
}

// FieldError reports an invalid value for one config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
