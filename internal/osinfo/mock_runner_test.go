package osinfo

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/osdetect/internal/logging"
)

// mockRunner is a testify mock of Runner. Expectations are keyed on the
// program name and its argument slice.
type mockRunner struct {
	mock.Mock
}

func newMockRunner(t *testing.T) *mockRunner {
	t.Helper()
	m := &mockRunner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockRunner) Run(name string, args ...string) ([]byte, error) {
	ret := m.Called(name, args)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

func (m *mockRunner) expect(out string, name string, args ...string) *mock.Call {
	return m.On("Run", name, args).Return([]byte(out), nil)
}

func (m *mockRunner) expectErr(err error, name string, args ...string) *mock.Call {
	return m.On("Run", name, args).Return(nil, err)
}

const ubuntuOSRelease = `PRETTY_NAME="Ubuntu 22.04.3 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
VERSION="22.04"
VERSION_CODENAME=jammy
ID=ubuntu
ID_LIKE=debian
`

const systeminfoOutput = "\r\n" +
	"Host Name:                 BUILD-AGENT-07\r\n" +
	"OS Name:                   Microsoft Windows 10 Pro\r\n" +
	"OS Version:                10.0.19045 N/A Build 19045\r\n" +
	"OS Build:               19045\r\n" +
	"System Type:               x64-based PC\r\n"

func memFs(t *testing.T, path, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fs
}

// newTestDetector builds a Detector with the given runner and an os-release
// fixture at the default path.
func newTestDetector(t *testing.T, platform string, r Runner, osRelease string) *Detector {
	t.Helper()
	return New(
		WithPlatform(platform),
		WithArchitecture("amd64"),
		WithRunner(r),
		WithFs(memFs(t, DefaultOSReleasePath, osRelease)),
		WithLogger(logging.ForTest(t)),
	)
}
