package osinfo

import "strings"

// Info describes the host operating system.
//
// Info is a plain value: copies share no state and compare equal with ==.
type Info struct {
	// Name is the human-readable OS name, e.g. "Windows", "macOS" or the
	// NAME field of os-release. Empty on Linux when os-release has no NAME.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Version is the platform-specific version string.
	Version string `json:"version" yaml:"version" toml:"version"`

	// Architecture is the CPU architecture the binary runs on.
	Architecture string `json:"architecture" yaml:"architecture" toml:"architecture"`

	// AdditionalInfo is the kernel release on Linux and "Build: <n>" on
	// Windows and macOS.
	AdditionalInfo string `json:"additional_info,omitempty" yaml:"additional_info,omitempty" toml:"additional_info,omitempty"`
}

// String renders the info on one line, e.g. "Ubuntu 22.04 (amd64) [6.5.0-14-generic]".
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Name)
	if i.Version != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(i.Version)
	}
	if i.Architecture != "" {
		b.WriteString(" (" + i.Architecture + ")")
	}
	if i.AdditionalInfo != "" {
		b.WriteString(" [" + i.AdditionalInfo + "]")
	}
	return strings.TrimSpace(b.String())
}
