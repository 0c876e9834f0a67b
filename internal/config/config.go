package config

import (
	"io/fs"

	"github.com/spf13/viper"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
	"github.com/thoreinstein/osdetect/internal/paths"
	"github.com/thoreinstein/osdetect/internal/render"
)

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "OSDETECT"

// Config represents the top-level configuration structure.
type Config struct {
	Version       int    `mapstructure:"version" yaml:"version"`
	Platform      string `mapstructure:"platform" yaml:"platform,omitempty"`
	OSReleasePath string `mapstructure:"os_release_path" yaml:"os_release_path"`
	Output        string `mapstructure:"output" yaml:"output"`
	LogFormat     string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:       CurrentVersion,
		OSReleasePath: osinfo.DefaultOSReleasePath,
		Output:        string(render.FormatText),
		LogFormat:     string(logging.FormatText),
	}
}

// Init resets Viper and registers search paths, env handling and defaults.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("platform", def.Platform)
	viper.SetDefault("os_release_path", def.OSReleasePath)
	viper.SetDefault("output", def.Output)
	viper.SetDefault("log_format", def.LogFormat)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the search paths are used and a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load without a file uses defaults
		case errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "validating config")
	}

	return &cfg, nil
}

// Used returns the config file Viper loaded, or "" when defaults are in effect.
func Used() string {
	return viper.ConfigFileUsed()
}
