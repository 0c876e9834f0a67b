package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

var gatherOutput outputFlags

// pickPlatform chooses a gatherer interactively.
var pickPlatform = fuzzyPickPlatform

// isInteractive decides whether gather may prompt.
var isInteractive = logging.IsInteractive

func init() {
	gatherOutput.register(gatherCmd)
	rootCmd.AddCommand(gatherCmd)
}

var gatherCmd = &cobra.Command{
	Use:   "gather [windows|linux|macos]",
	Short: "Run one OS gatherer without caching",
	Long: `Run a single platform gatherer directly, bypassing dispatch caching.

With no argument on an interactive terminal a gatherer is picked from a
fuzzy finder. Otherwise the current platform (or --platform) is used.

Gathering for a platform other than the host usually fails because its
probe commands are missing.`,
	Example: `  # Force the Linux gatherer
  osdetect gather linux -o json

  # Pick interactively
  osdetect gather

  See Also: osdetect detect`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: osinfo.Platforms(),
	RunE:      runGather,
}

func runGather(cmd *cobra.Command, args []string) error {
	if _, err := gatherOutput.resolve(); err != nil {
		return err
	}

	d := newDetector(cmd)
	tag := d.Platform()

	switch {
	case len(args) == 1:
		tag = args[0]
	case isInteractive(cmd.InOrStdin(), cmd.OutOrStdout()):
		picked, err := pickPlatform(tag)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return errors.NewSystemError(err, "Pass the platform as an argument instead")
		}
		tag = picked
	}

	info, err := d.Gather(tag)
	if err != nil {
		return detectionError(err)
	}

	return gatherOutput.write(cmd, info)
}

func fuzzyPickPlatform(current string) (string, error) {
	platforms := osinfo.Platforms()

	idx, err := fuzzyfinder.Find(
		platforms,
		func(i int) string {
			if platforms[i] == current {
				return platforms[i] + " (current)"
			}
			return platforms[i]
		},
		fuzzyfinder.WithPromptString("gatherer> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return probeDescription(platforms[i])
		}),
	)
	if err != nil {
		return "", errors.Wrap(err, "interactive selection failed")
	}
	return platforms[idx], nil
}

func probeDescription(tag string) string {
	switch tag {
	case osinfo.PlatformWindows:
		return "Runs:\n  cmd /C ver\n  cmd /C systeminfo"
	case osinfo.PlatformLinux:
		return fmt.Sprintf("Reads:\n  %s\nRuns:\n  uname -r", osinfo.DefaultOSReleasePath)
	case osinfo.PlatformMacOS:
		return "Runs:\n  sw_vers -productVersion\n  sw_vers -buildVersion"
	}
	return ""
}
