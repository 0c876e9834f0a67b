package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/osdetect/internal/doctor"
	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
)

// hostProbe is the probe used by the host-consistency check; nil means gopsutil.
var hostProbe doctor.HostProbe

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose OS detection on this host",
	Long: `Run diagnostic checks against OS detection.

Checks that detection succeeds, that os-release carries NAME and VERSION
on Linux, and that the result agrees with what the host reports through
an independent source.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorQuiet, doctorVerbose} {
		if set {
			count++
		}
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --json, --quiet, and --verbose are mutually exclusive"), "")
	}
	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	d := newDetector(cmd)
	osReleasePath := osinfo.DefaultOSReleasePath
	if cfg != nil && cfg.OSReleasePath != "" {
		osReleasePath = cfg.OSReleasePath
	}

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewDetectionCheck(d))
	runner.AddCheck(doctor.NewOSReleaseCheck(doctorFs, osReleasePath, d.Platform()))
	runner.AddCheck(doctor.NewHostConsistencyCheck(d, hostProbe))

	report := runner.Run()

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(nil, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

// doctorFs is the filesystem the os-release check reads.
var doctorFs afero.Fs = afero.NewOsFs()

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	return outputDoctorText(w, report, logging.SupportsColor(w))
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport, useColor bool) error {
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n",
			statusIcon(result.Status, useColor), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
		if showAll {
			for _, k := range sortedKeys(result.Details) {
				fmt.Fprintf(w, "    %s: %v\n", k, result.Details[k])
			}
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return errors.Wrap(err, "writing report")
}

func statusIcon(s doctor.Severity, useColor bool) string {
	var icon string
	var c *color.Color
	switch s {
	case doctor.SeverityPass:
		icon, c = "✓", color.New(color.FgGreen)
	case doctor.SeverityInfo:
		icon, c = "ℹ", color.New(color.FgBlue)
	case doctor.SeverityWarning:
		icon, c = "⚠", color.New(color.FgYellow)
	case doctor.SeverityError:
		icon, c = "✗", color.New(color.FgRed, color.Bold)
	default:
		return "?"
	}

	if !useColor {
		return icon
	}
	c.EnableColor()
	return c.Sprint(icon)
}
