package osinfo

const (
	windowsName   = "Windows"
	osBuildMarker = "OS Build"
	unknownBuild  = "Unknown"
	buildPrefix   = "Build: "
)

// WindowsInfo gathers OS information with `cmd /C ver` and `cmd /C systeminfo`.
// It bypasses dispatch and the cache.
//
// The first line of ver output is the version, untrimmed. A missing OS Build
// line reports "Build: Unknown"; a systeminfo launch failure is fatal.
func (d *Detector) WindowsInfo() (Info, error) {
	out, err := d.run("cmd", "/C", "ver")
	if err != nil {
		return Info{}, err
	}

	version, ok := firstLine(out)
	if !ok {
		return Info{}, parseError("unable to read Windows version")
	}

	sysinfo, err := d.run("cmd", "/C", "systeminfo")
	if err != nil {
		return Info{}, err
	}

	build, ok := windowsBuild(sysinfo)
	if !ok {
		d.logger.Debug("systeminfo has no OS Build line")
		build = unknownBuild
	}

	return Info{
		Name:           windowsName,
		Version:        version,
		Architecture:   d.arch,
		AdditionalInfo: buildPrefix + build,
	}, nil
}
