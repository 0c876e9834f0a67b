package commands

import (
	"github.com/spf13/cobra"
)

var detectOutput outputFlags

func init() {
	detectOutput.register(detectCmd)
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the host operating system",
	Long: `Detect the host operating system and print its name, version,
architecture and additional information.

The gatherer is chosen from --platform, the config file's platform key,
or the running host, in that order.`,
	Example: `  # Human-readable
  osdetect detect

  # YAML written atomically to a file
  osdetect detect -o yaml --output-file host.yaml

  See Also: osdetect gather, osdetect doctor`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, _ []string) error {
	if _, err := detectOutput.resolve(); err != nil {
		return err
	}

	info, err := newDetector(cmd).Info()
	if err != nil {
		return detectionError(err)
	}

	return detectOutput.write(cmd, info)
}
