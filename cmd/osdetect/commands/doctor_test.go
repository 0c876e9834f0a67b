package commands

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/osdetect/internal/doctor"
	"github.com/thoreinstein/osdetect/internal/errors"
)

func TestDoctor_Healthy(t *testing.T) {
	setup(t, defaultHost(), ubuntuOSRelease)

	out, err := execute(t, "doctor", "--platform", "linux", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "[detection] os-detection: detected Ubuntu")
	assert.Contains(t, out, "[detection] os-release:")
	assert.Contains(t, out, "Summary: ")
	assert.Contains(t, out, "0 warnings, 0 errors")
}

func TestDoctor_JSON(t *testing.T) {
	setup(t, defaultHost(), ubuntuOSRelease)

	out, err := execute(t, "doctor", "--platform", "linux", "--json")
	require.NoError(t, err)

	var report struct {
		Results []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"results"`
		Summary doctor.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 3)
	assert.Equal(t, "os-detection", report.Results[0].Name)
	assert.Equal(t, "pass", report.Results[0].Status)
	assert.Equal(t, "os-release", report.Results[1].Name)
	assert.Equal(t, "host-consistency", report.Results[2].Name)
	assert.Zero(t, report.Summary.Errors)
}

func TestDoctor_WarningsExitOne(t *testing.T) {
	setup(t, defaultHost(), "ID=alpine\n")

	out, err := execute(t, "doctor", "--platform", "linux")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, out, "NAME and VERSION missing")
	assert.Contains(t, out, "hint: ")
}

func TestDoctor_ErrorsExitTwo(t *testing.T) {
	host := defaultHost()
	delete(host.outputs, "sw_vers -productVersion")
	setup(t, host, "")

	out, err := execute(t, "doctor", "--platform", "macos", "--quiet")
	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Empty(t, out)
}

func TestDoctor_MutuallyExclusiveFlags(t *testing.T) {
	setup(t, defaultHost(), ubuntuOSRelease)

	_, err := execute(t, "doctor", "--json", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestOutputDoctorText_DefaultHidesPassing(t *testing.T) {
	resetFlags()
	report := &doctor.DoctorReport{
		Timestamp: time.Now(),
		Results: []*doctor.CheckResult{
			{Name: "ok", Category: "detection", Status: doctor.SeverityPass, Message: "fine"},
			{Name: "meh", Category: "host", Status: doctor.SeverityWarning, Message: "odd", FixHint: "look"},
		},
		Summary: doctor.Summary{Passed: 1, Warnings: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, outputDoctorText(&buf, report, false))

	want := "⚠ [host] meh: odd\n" +
		"  hint: look\n" +
		"\n" +
		"Summary: 1 passed, 0 info, 1 warnings, 0 errors\n"
	assert.Equal(t, want, buf.String())
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		s    doctor.Severity
		want string
	}{
		{doctor.SeverityPass, "✓"},
		{doctor.SeverityInfo, "ℹ"},
		{doctor.SeverityWarning, "⚠"},
		{doctor.SeverityError, "✗"},
		{doctor.Severity(7), "?"},
	}
	for _, tt := range tests {
		if got := statusIcon(tt.s, false); got != tt.want {
			t.Errorf("statusIcon(%v) = %q, want %q", tt.s, got, tt.want)
		}
	}

	colored := statusIcon(doctor.SeverityError, true)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "✗")
}
