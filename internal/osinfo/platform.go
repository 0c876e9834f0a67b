package osinfo

import "runtime"

// Platform tags recognized by the Detector.
const (
	PlatformWindows = "windows"
	PlatformLinux   = "linux"
	PlatformMacOS   = "macos"
)

// Platforms returns the supported platform tags in a stable order.
func Platforms() []string {
	return []string{PlatformWindows, PlatformLinux, PlatformMacOS}
}

// ValidPlatform reports whether tag is one of the supported platform tags.
// Matching is case-sensitive.
func ValidPlatform(tag string) bool {
	switch tag {
	case PlatformWindows, PlatformLinux, PlatformMacOS:
		return true
	}
	return false
}

// CurrentPlatform returns the platform tag of the running process.
// GOOS "darwin" maps to "macos"; every other GOOS is returned unchanged,
// so unsupported systems surface their own name.
func CurrentPlatform() string {
	return platformTag(runtime.GOOS)
}

func platformTag(goos string) string {
	if goos == "darwin" {
		return PlatformMacOS
	}
	return goos
}

// CurrentArchitecture returns the CPU architecture of the running binary.
func CurrentArchitecture() string {
	return runtime.GOARCH
}
