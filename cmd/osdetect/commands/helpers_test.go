package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/thoreinstein/osdetect/internal/doctor"
	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
	"github.com/thoreinstein/osdetect/internal/paths"
)

const ubuntuOSRelease = "NAME=\"Ubuntu\"\nVERSION=\"22.04.3 LTS (Jammy Jellyfish)\"\nID=ubuntu\n"

// fakeHost answers every probe with canned output and counts calls.
type fakeHost struct {
	outputs map[string]string
	calls   int
}

func (f *fakeHost) run(name string, args ...string) ([]byte, error) {
	f.calls++
	cmdline := strings.Join(append([]string{name}, args...), " ")
	out, ok := f.outputs[cmdline]
	if !ok {
		return nil, errors.Newf("exec: %q: executable file not found in $PATH", name)
	}
	return []byte(out), nil
}

func defaultHost() *fakeHost {
	return &fakeHost{outputs: map[string]string{
		"uname -r":                "6.5.0-14-generic\n",
		"sw_vers -productVersion": "14.2.1\n",
		"sw_vers -buildVersion":   "23C71\n",
		"cmd /C ver":              "Microsoft Windows [Version 10.0.19045.3803]\r\n",
		"cmd /C systeminfo":       "OS Name: Microsoft Windows 10 Pro\r\nOS Build:  19045\r\n",
	}}
}

type fakeProbe struct {
	kernel  string
	version string
}

func (p fakeProbe) KernelVersion() (string, error) { return p.kernel, nil }

func (p fakeProbe) PlatformInformation() (string, string, string, error) {
	return "ubuntu", "debian", p.version, nil
}

var _ doctor.HostProbe = fakeProbe{}

// setup isolates a command test: no config file, a fake host, an in-memory
// os-release and freshly reset flag variables.
func setup(t *testing.T, host *fakeHost, osRelease string) afero.Fs {
	t.Helper()

	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Setenv(debugEnv, "")
	t.Chdir(t.TempDir())

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, osinfo.DefaultOSReleasePath, []byte(osRelease), 0o644); err != nil {
		t.Fatal(err)
	}

	detectorOverrides = []osinfo.Option{
		osinfo.WithRunner(osinfo.RunnerFunc(host.run)),
		osinfo.WithFs(fs),
		osinfo.WithArchitecture("amd64"),
	}
	doctorFs = fs
	hostProbe = fakeProbe{kernel: "6.5.0-14-generic", version: "22.04"}

	t.Cleanup(func() {
		detectorOverrides = nil
		doctorFs = afero.NewOsFs()
		hostProbe = nil
		pickPlatform = fuzzyPickPlatform
		isInteractive = logging.IsInteractive
		resetFlags()
	})
	resetFlags()
	return fs
}

func resetFlags() {
	platformFlag, verbosity, quiet = "", 0, false
	logFormat, logFile, configFile = "", "", ""
	detectOutput, gatherOutput = outputFlags{}, outputFlags{}
	doctorJSON, doctorQuiet, doctorVerbose = false, false, false
	configInitForce = false
	_ = closeLogFile()
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}
