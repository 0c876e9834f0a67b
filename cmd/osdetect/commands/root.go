// Package commands implements the CLI commands for osdetect.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/osdetect/cmd"
	"github.com/thoreinstein/osdetect/internal/config"
	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

// debugEnv raises verbosity when no -v flag is given: 1|true is debug, 2 is trace.
const debugEnv = "OSDETECT_DEBUG"

var (
	platformFlag string
	verbosity    int
	quiet        bool
	logFormat    string
	logFile      string
	configFile   string
)

var (
	// cfg is the loaded configuration; defaults when loading failed.
	cfg *config.Config

	// configLoadErr holds any error that occurred during config loading.
	configLoadErr error

	// logCloser is the open --log-file, if any.
	logCloser io.Closer

	// detectorOverrides are appended to every Detector's options.
	detectorOverrides []osinfo.Option
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "",
		"platform tag to detect as: "+strings.Join(osinfo.Platforms(), ", ")+" (default: current host)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or <config dir>/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("osdetect version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
	if configLoadErr != nil {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "osdetect",
	Short: "Detect the host operating system",
	Long: `osdetect reports the name, version, architecture and build or kernel
release of the operating system it runs on.

Windows is probed with "ver" and "systeminfo", Linux with /etc/os-release
and "uname -r", and macOS with "sw_vers". The first successful result is
cached for the life of the process.`,
	Example: `  # Detect the current host
  osdetect detect

  # Machine-readable output
  osdetect detect -o json

  # Run one gatherer explicitly
  osdetect gather linux

  # Check that detection works on this host
  osdetect doctor

  See Also: osdetect config, osdetect version`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateGlobalFlags(cmd, args)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch effectiveLogFormat() {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		logCloser = f
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
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

func closeLogFile() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return errors.Wrap(err, "closing log file")
}

// effectiveLogFormat resolves --log-format, then the config file.
func effectiveLogFormat() logging.Format {
	if logFormat != "" {
		return logging.Format(logFormat)
	}
	if cfg != nil && cfg.LogFormat != "" {
		return logging.Format(cfg.LogFormat)
	}
	return logging.FormatText
}

// skipConfigCheck lists commands that must work with a broken config file.
var skipConfigCheck = map[string]bool{
	"help":    true,
	"version": true,
	"path":    true,
	"init":    true,
}

// validateGlobalFlags reports config load errors and checks --platform and --log-format.
func validateGlobalFlags(cmd *cobra.Command, _ []string) error {
	switch logging.Format(logFormat) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		err := errors.Newf("invalid log format: %s", logFormat)
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	if configLoadErr != nil && !skipConfigCheck[cmd.Name()] {
		return errors.NewConfigError(configLoadErr)
	}

	if platformFlag != "" && !osinfo.ValidPlatform(platformFlag) {
		err := errors.Wrapf(errors.ErrInvalidPlatform, "%s (valid: %s)",
			platformFlag, strings.Join(osinfo.Platforms(), ", "))
		return errors.NewUserError(err, "Run 'osdetect --help' to see valid platforms")
	}

	return nil
}

// effectivePlatform resolves --platform, then the config file, then the host.
func effectivePlatform() string {
	if platformFlag != "" {
		return platformFlag
	}
	if cfg != nil && cfg.Platform != "" {
		return cfg.Platform
	}
	return osinfo.CurrentPlatform()
}

// newDetector builds a Detector from flags and config.
func newDetector(cmd *cobra.Command) *osinfo.Detector {
	opts := []osinfo.Option{
		osinfo.WithPlatform(effectivePlatform()),
		osinfo.WithFs(afero.NewOsFs()),
		osinfo.WithLogger(logging.FromContext(cmd.Context())),
	}
	if cfg != nil {
		opts = append(opts, osinfo.WithOSReleasePath(cfg.OSReleasePath))
	}
	opts = append(opts, detectorOverrides...)
	return osinfo.New(opts...)
}

// detectionError maps a detection failure to an exit code and suggestion.
func detectionError(err error) error {
	var osErr *osinfo.Error
	if !errors.As(err, &osErr) {
		return errors.NewSystemError(err, "")
	}

	switch osErr.Kind {
	case osinfo.KindUnsupportedOS:
		return errors.NewUserError(err,
			"Pass --platform with one of: "+strings.Join(osinfo.Platforms(), ", "))
	case osinfo.KindParseError:
		return errors.NewSystemError(err, "Run with -vvv to log the probe output")
	default:
		return errors.NewSystemError(err, "Run: osdetect doctor")
	}
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
