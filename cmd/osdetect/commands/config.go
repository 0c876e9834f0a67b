package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/osdetect/internal/config"
	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/paths"
	"github.com/thoreinstein/osdetect/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage osdetect configuration",
	Long: `Manage osdetect configuration stored in <config dir>/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show effective configuration
  osdetect config

  # Create a config file with defaults
  osdetect config init

See Also: osdetect doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration as YAML: defaults, overlaid with the
config file, overlaid with OSDETECT_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	source := config.Used()
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(w, "# source: %s\n", source)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrap(enc.Close(), "encoding config")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path := config.Used()
	if path == "" {
		path = paths.ConfigFile()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := paths.ConfigFile()

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(
			errors.Newf("config file already exists: %s", path),
			"Use --force to overwrite it")
	}

	if err := paths.EnsureDir(paths.ConfigDir(), 0); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default(), 0o600); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", path), "")
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}
