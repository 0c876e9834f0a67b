package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

var ubuntu = osinfo.Info{
	Name:           "Ubuntu",
	Version:        "22.04",
	Architecture:   "x86_64",
	AdditionalInfo: "6.5.0-14-generic",
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
		{"yml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ubuntu, FormatText))

	want := "Name:         Ubuntu\n" +
		"Version:      22.04\n" +
		"Architecture: x86_64\n" +
		"Additional:   6.5.0-14-generic\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextOmitsEmptyAdditional(t *testing.T) {
	info := ubuntu
	info.AdditionalInfo = ""

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, info, FormatText))
	assert.NotContains(t, buf.String(), "Additional")
}

func TestWrite_TextWithColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, ubuntu, true))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Ubuntu")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ubuntu, FormatJSON))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"name":            "Ubuntu",
		"version":         "22.04",
		"architecture":    "x86_64",
		"additional_info": "6.5.0-14-generic",
	}, got)
}

func TestWrite_JSONOmitsEmptyAdditional(t *testing.T) {
	info := ubuntu
	info.AdditionalInfo = ""

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, info, FormatJSON))
	assert.NotContains(t, buf.String(), "additional_info")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ubuntu, FormatYAML))
	assert.Contains(t, buf.String(), "name: Ubuntu\n")

	var got osinfo.Info
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, ubuntu, got)
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ubuntu, FormatTOML))
	assert.Contains(t, buf.String(), "architecture = ")

	var got osinfo.Info
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, ubuntu, got)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, ubuntu, Format("xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	assert.Empty(t, buf.String())
}
