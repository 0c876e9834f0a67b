// Package osinfo detects the host operating system.
//
// A [Detector] reports the OS name, version, CPU architecture and one piece
// of platform-specific detail (kernel release on Linux, build number on
// Windows and macOS). Exactly three platform families are supported:
// [PlatformWindows], [PlatformLinux] and [PlatformMacOS]. Any other platform
// tag fails with an [*Error] of kind [KindUnsupportedOS].
//
// # Caching
//
// The first successful call to [Detector.Info] is memoized for the lifetime
// of the Detector; later calls return the cached value without running any
// command. Failures are never cached, so a failed detection is retried in
// full on the next call.
//
//	d := osinfo.New()
//	info, err := d.Info()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.Name, info.Version)
//
// # Gatherers
//
// [Detector.WindowsInfo], [Detector.LinuxInfo] and [Detector.MacOSInfo]
// run a single platform's probes directly, bypassing dispatch and the cache.
// Probes run through a [Runner] and read files through an afero.Fs, both of
// which can be replaced with [WithRunner] and [WithFs].
//
// # Errors
//
// Every failure is an [*Error]. Use errors.Is with [ErrCommandFailed],
// [ErrUnsupportedOS] or [ErrParse] to branch on the kind, or errors.As to
// read the offending tag, command or file.
//
// # Thread Safety
//
// A Detector is safe for concurrent use. Concurrent first calls are
// serialized so the probes run once.
package osinfo
