package doctor

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/afero"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/osinfo"
	"github.com/thoreinstein/osdetect/pkg/fileutil"
)

// InfoSource is the part of osinfo.Detector the checks use.
type InfoSource interface {
	Info() (osinfo.Info, error)
	Platform() string
}

var _ InfoSource = (*osinfo.Detector)(nil)

// DetectionCheck runs OS detection and reports whether it succeeded.
type DetectionCheck struct {
	source InfoSource
}

var _ Check = (*DetectionCheck)(nil)

// NewDetectionCheck creates a check that runs detection through source.
func NewDetectionCheck(source InfoSource) *DetectionCheck {
	return &DetectionCheck{source: source}
}

// Name returns the unique identifier for this check.
func (c *DetectionCheck) Name() string {
	return "os-detection"
}

// Category returns the grouping for this check.
func (c *DetectionCheck) Category() string {
	return "detection"
}

// Run executes detection and classifies any failure.
func (c *DetectionCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"platform": c.source.Platform()},
	}

	info, err := c.source.Info()
	if err == nil {
		result.Status = SeverityPass
		result.Message = "detected " + info.String()
		result.Details["name"] = info.Name
		result.Details["version"] = info.Version
		result.Details["architecture"] = info.Architecture
		result.Details["additional_info"] = info.AdditionalInfo
		return result
	}

	result.Status = SeverityError
	result.Message = err.Error()

	var osErr *osinfo.Error
	if errors.As(err, &osErr) {
		result.Details["kind"] = osErr.Kind.String()
		if osErr.Target != "" {
			result.Details["target"] = osErr.Target
		}
		result.FixHint = fixHint(osErr)
	}
	return result
}

func fixHint(e *osinfo.Error) string {
	switch e.Kind {
	case osinfo.KindUnsupportedOS:
		return "pass --platform with one of: " + strings.Join(osinfo.Platforms(), ", ")
	case osinfo.KindParseError:
		return "re-run with -vvv to log the probe output"
	}
	if e.Source == osinfo.SourceFile {
		return fmt.Sprintf("check that %s exists and is readable, or set os_release_path", e.Target)
	}
	name, _, _ := strings.Cut(e.Target, " ")
	return fmt.Sprintf("ensure %q is installed and on PATH", name)
}

// OSReleaseCheck inspects the os-release file the Linux gatherer reads.
type OSReleaseCheck struct {
	fs       afero.Fs
	path     string
	platform string
}

var _ Check = (*OSReleaseCheck)(nil)

// NewOSReleaseCheck creates a check for the os-release file at path.
// The check only applies when platform is "linux".
func NewOSReleaseCheck(fs afero.Fs, path, platform string) *OSReleaseCheck {
	return &OSReleaseCheck{fs: fs, path: path, platform: platform}
}

// Name returns the unique identifier for this check.
func (c *OSReleaseCheck) Name() string {
	return "os-release"
}

// Category returns the grouping for this check.
func (c *OSReleaseCheck) Category() string {
	return "detection"
}

// Run reads os-release and warns about fields that will come back empty.
func (c *OSReleaseCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	if c.platform != osinfo.PlatformLinux {
		result.Status = SeverityInfo
		result.Message = "not used on " + c.platform
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.fs, c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = "cannot read " + c.path
		result.Details["error"] = err.Error()
		result.FixHint = "set os_release_path to the distribution's os-release file"
		return result
	}

	name, version := osinfo.ParseOSRelease(data)
	result.Details["name"] = name
	result.Details["version"] = version

	var missing []string
	if name == "" {
		missing = append(missing, "NAME")
	}
	if version == "" {
		missing = append(missing, "VERSION")
	}
	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s missing; detection will report empty values", strings.Join(missing, " and "))
		result.FixHint = "add NAME= and VERSION= lines to " + c.path
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("NAME=%q VERSION=%q", name, version)
	return result
}

// HostProbe reports the host as an independent source sees it.
type HostProbe interface {
	KernelVersion() (string, error)
	PlatformInformation() (platform, family, version string, err error)
}

// GopsutilHost implements HostProbe with gopsutil.
type GopsutilHost struct{}

// KernelVersion returns the running kernel release.
func (GopsutilHost) KernelVersion() (string, error) {
	return host.KernelVersion()
}

// PlatformInformation returns the platform, family and version.
func (GopsutilHost) PlatformInformation() (string, string, string, error) {
	return host.PlatformInformation()
}

// HostConsistencyCheck cross-checks detection against a HostProbe.
type HostConsistencyCheck struct {
	source InfoSource
	probe  HostProbe
	native string
}

var _ Check = (*HostConsistencyCheck)(nil)

// NewHostConsistencyCheck creates the check. A nil probe uses GopsutilHost.
func NewHostConsistencyCheck(source InfoSource, probe HostProbe) *HostConsistencyCheck {
	if probe == nil {
		probe = GopsutilHost{}
	}
	return &HostConsistencyCheck{
		source: source,
		probe:  probe,
		native: osinfo.CurrentPlatform(),
	}
}

// Name returns the unique identifier for this check.
func (c *HostConsistencyCheck) Name() string {
	return "host-consistency"
}

// Category returns the grouping for this check.
func (c *HostConsistencyCheck) Category() string {
	return "host"
}

// Run compares the detected kernel (Linux) or version (macOS) with the
// probe. Other platforms only report what the probe sees.
func (c *HostConsistencyCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{},
	}

	platform := c.source.Platform()
	if platform != c.native {
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("skipped: platform overridden to %q on a %s host", platform, c.native)
		return result
	}

	info, err := c.source.Info()
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "skipped: detection failed"
		return result
	}

	hostPlatform, family, hostVersion, err := c.probe.PlatformInformation()
	if err != nil {
		result.Status = SeverityWarning
		result.Message = "host platform information unavailable"
		result.Details["error"] = err.Error()
		return result
	}
	result.Details["host_platform"] = hostPlatform
	result.Details["host_family"] = family
	result.Details["host_version"] = hostVersion

	switch platform {
	case osinfo.PlatformLinux:
		kernel, err := c.probe.KernelVersion()
		if err != nil {
			result.Status = SeverityWarning
			result.Message = "host kernel version unavailable"
			result.Details["error"] = err.Error()
			return result
		}
		return compare(result, "kernel", info.AdditionalInfo, strings.TrimSpace(kernel))
	case osinfo.PlatformMacOS:
		return compare(result, "version", info.Version, hostVersion)
	default:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("host reports %s %s (%s)", hostPlatform, hostVersion, family)
		return result
	}
}

func compare(result *CheckResult, what, detected, reported string) *CheckResult {
	result.Details["detected_"+what] = detected
	result.Details["host_"+what] = reported

	if detected == reported {
		result.Status = SeverityPass
		result.Message = what + " matches host: " + detected
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%s mismatch: detected %q, host reports %q", what, detected, reported)
	result.FixHint = "run with -vv to see which probe produced the value"
	return result
}
