package osinfo

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/thoreinstein/osdetect/internal/logging"
)

// DefaultOSReleasePath is the os-release file read on Linux.
const DefaultOSReleasePath = "/etc/os-release"

// Detector detects the host OS and memoizes the first successful result.
// The zero value is not usable; create one with New.
type Detector struct {
	mu     sync.Mutex
	cached *Info

	runner        Runner
	fs            afero.Fs
	platform      string
	arch          string
	osReleasePath string
	logger        *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithRunner sets the command runner used by the gatherers.
func WithRunner(r Runner) Option {
	return func(d *Detector) {
		if r != nil {
			d.runner = r
		}
	}
}

// WithFs sets the filesystem the Linux gatherer reads from.
func WithFs(fs afero.Fs) Option {
	return func(d *Detector) {
		if fs != nil {
			d.fs = fs
		}
	}
}

// WithPlatform overrides the platform tag used for dispatch.
// An empty tag keeps the current platform.
func WithPlatform(tag string) Option {
	return func(d *Detector) {
		if tag != "" {
			d.platform = tag
		}
	}
}

// WithArchitecture overrides the reported architecture.
func WithArchitecture(arch string) Option {
	return func(d *Detector) {
		if arch != "" {
			d.arch = arch
		}
	}
}

// WithOSReleasePath overrides the os-release location.
func WithOSReleasePath(path string) Option {
	return func(d *Detector) {
		if path != "" {
			d.osReleasePath = path
		}
	}
}

// WithLogger sets the logger for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New returns a Detector with an empty cache. Without options it probes the
// running host with os/exec and the OS filesystem.
func New(opts ...Option) *Detector {
	d := &Detector{
		fs:            afero.NewOsFs(),
		platform:      CurrentPlatform(),
		arch:          CurrentArchitecture(),
		osReleasePath: DefaultOSReleasePath,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.runner == nil {
		d.runner = ExecRunner{Logger: d.logger}
	}
	return d
}

// Platform returns the platform tag the Detector dispatches on.
func (d *Detector) Platform() string {
	return d.platform
}

// Info returns the host OS information.
//
// The first successful result is cached and returned by every later call
// without running any probe. Errors are returned unchanged and leave the
// cache empty.
func (d *Detector) Info() (Info, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil {
		d.logger.Debug("os info cache hit", "platform", d.platform)
		return *d.cached, nil
	}

	info, err := d.Gather(d.platform)
	if err != nil {
		return Info{}, err
	}

	cached := info
	d.cached = &cached
	d.logger.Debug("os info cached", "name", info.Name, "version", info.Version)
	return info, nil
}

// Cached returns the memoized info, if any, without detecting.
func (d *Detector) Cached() (Info, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached == nil {
		return Info{}, false
	}
	return *d.cached, true
}

// Gather runs the gatherer for tag without reading or writing the cache.
func (d *Detector) Gather(tag string) (Info, error) {
	d.logger.Debug("dispatching gatherer", "platform", tag)

	switch tag {
	case PlatformWindows:
		return d.WindowsInfo()
	case PlatformLinux:
		return d.LinuxInfo()
	case PlatformMacOS:
		return d.MacOSInfo()
	default:
		return Info{}, unsupportedError(tag)
	}
}

// run executes one probe and converts a launch failure into an *Error.
func (d *Detector) run(name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	d.logger.Debug("running probe", "cmd", cmdline)

	out, err := d.runner.Run(name, args...)
	if err != nil {
		d.logger.Debug("probe failed", "cmd", cmdline, "error", err)
		return "", commandError(cmdline, err)
	}

	d.logger.Log(context.Background(), logging.LevelTrace, "probe output",
		"cmd", cmdline, "bytes", len(out))
	return decode(out), nil
}
