package osinfo

import (
	"strings"
	"unicode/utf8"
)

// decode converts probe output to text, replacing invalid UTF-8.
func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// lines splits s on "\n" and strips a trailing "\r" from each line.
func lines(s string) []string {
	ls := strings.Split(s, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}

// firstLine returns the first line of s with any trailing "\r" removed.
// The line is returned as is, even when blank; only empty s has no line.
func firstLine(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	l, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(l, "\r"), true
}

// parseOSRelease extracts NAME and VERSION from os-release text.
// Values have surrounding double quotes stripped; the last occurrence wins;
// a missing key yields "".
func parseOSRelease(s string) (name, version string) {
	for _, l := range lines(s) {
		switch {
		case strings.HasPrefix(l, "NAME="):
			name = osReleaseValue(l)
		case strings.HasPrefix(l, "VERSION="):
			version = osReleaseValue(l)
		}
	}
	return name, version
}

func osReleaseValue(line string) string {
	_, v, _ := strings.Cut(line, "=")
	return strings.Trim(v, `"`)
}

// windowsBuild finds the first systeminfo line mentioning "OS Build" and
// returns the text after its first colon, trimmed.
func windowsBuild(s string) (string, bool) {
	for _, l := range lines(s) {
		if strings.Contains(l, osBuildMarker) {
			_, v, _ := strings.Cut(l, ":")
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// ParseOSRelease extracts NAME and VERSION from raw os-release content the
// same way the Linux gatherer does.
func ParseOSRelease(data []byte) (name, version string) {
	return parseOSRelease(decode(data))
}
