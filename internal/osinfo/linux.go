package osinfo

import (
	"strings"

	"github.com/thoreinstein/osdetect/pkg/fileutil"
)

// LinuxInfo gathers OS information from os-release and `uname -r`.
// It bypasses dispatch and the cache.
//
// A missing NAME or VERSION line leaves the field empty; it is not an error.
func (d *Detector) LinuxInfo() (Info, error) {
	data, err := fileutil.ReadFileWithLimit(d.fs, d.osReleasePath)
	if err != nil {
		d.logger.Debug("os-release unreadable", "path", d.osReleasePath, "error", err)
		return Info{}, fileError(d.osReleasePath, err)
	}

	name, version := parseOSRelease(decode(data))
	if name == "" {
		d.logger.Debug("os-release has no NAME", "path", d.osReleasePath)
	}

	kernel, err := d.run("uname", "-r")
	if err != nil {
		return Info{}, err
	}

	return Info{
		Name:           name,
		Version:        version,
		Architecture:   d.arch,
		AdditionalInfo: strings.TrimSpace(kernel),
	}, nil
}
