// Package paths resolves the filesystem locations osdetect uses for its own
// configuration.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// On Linux the config directory is $XDG_CONFIG_HOME/osdetect (usually
// ~/.config/osdetect); macOS and Windows use their native equivalents.
//
// Set OSDETECT_CONFIG_DIR to use a different directory:
//
//	OSDETECT_CONFIG_DIR=/tmp/osdetect osdetect config path
//	# /tmp/osdetect/config.yaml
package paths
