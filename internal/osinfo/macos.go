package osinfo

import "strings"

const macOSName = "macOS"

// MacOSInfo gathers OS information with sw_vers. It bypasses dispatch and
// the cache. Either sw_vers call failing to launch fails the gather.
func (d *Detector) MacOSInfo() (Info, error) {
	version, err := d.run("sw_vers", "-productVersion")
	if err != nil {
		return Info{}, err
	}

	build, err := d.run("sw_vers", "-buildVersion")
	if err != nil {
		return Info{}, err
	}

	return Info{
		Name:           macOSName,
		Version:        strings.TrimSpace(version),
		Architecture:   d.arch,
		AdditionalInfo: buildPrefix + strings.TrimSpace(build),
	}, nil
}
