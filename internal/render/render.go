package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/osdetect/internal/errors"
	"github.com/thoreinstein/osdetect/internal/logging"
	"github.com/thoreinstein/osdetect/internal/osinfo"
)

// Format is an output format name.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats returns the supported format names in display order.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat converts s to a Format. Matching is case-insensitive and an
// empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatText, nil
	}
	if !slices.Contains(Formats(), s) {
		return "", errors.Wrapf(errors.ErrInvalidFormat, "%q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
	return Format(s), nil
}

// Write renders info to w in format f.
func Write(w io.Writer, info osinfo.Info, f Format) error {
	switch f {
	case FormatText, "":
		return writeText(w, info, logging.SupportsColor(w))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(info), "encoding json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(info), "encoding toml")
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", string(f))
	}
}

type field struct {
	label string
	value string
}

func writeText(w io.Writer, info osinfo.Info, useColor bool) error {
	fields := []field{
		{"Name", info.Name},
		{"Version", info.Version},
		{"Architecture", info.Architecture},
	}
	if info.AdditionalInfo != "" {
		fields = append(fields, field{"Additional", info.AdditionalInfo})
	}

	label := color.New(color.FgCyan, color.Bold)
	if useColor {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label)+1)
	}

	for _, f := range fields {
		pad := strings.Repeat(" ", width-len(f.label)-1)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", label.Sprint(f.label+":"), pad, f.value); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
