package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/osdetect/cmd"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

func TestVersionCommand(t *testing.T) {
	setup(t, defaultHost(), "")

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	wants := []string{
		"osdetect version " + cmd.Version,
		"commit:   " + cmd.Commit,
		"built:    " + cmd.Date,
		"go:       " + runtime.Version(),
		"platform: " + osinfo.CurrentPlatform() + "/" + runtime.GOARCH,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand_IgnoresBrokenConfig(t *testing.T) {
	setup(t, defaultHost(), "")
	t.Setenv("OSDETECT_PLATFORM", "haiku")

	if _, err := execute(t, "version"); err != nil {
		t.Fatalf("version should not validate config: %v", err)
	}
}
