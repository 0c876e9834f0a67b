// Package render formats [osinfo.Info] for output.
//
// Four formats are supported: a labelled text block, JSON, YAML and TOML.
// Text output is colorized only when the destination supports it (see
// logging.SupportsColor).
package render
