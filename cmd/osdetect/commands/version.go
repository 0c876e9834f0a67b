package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/osdetect/cmd"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and toolchain of osdetect.`,
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "osdetect version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit:   %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:    %s\n", cmd.Date)
		fmt.Fprintf(w, "  go:       %s\n", runtime.Version())
		fmt.Fprintf(w, "  platform: %s/%s\n", osinfo.CurrentPlatform(), osinfo.CurrentArchitecture())
	},
}
