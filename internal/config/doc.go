// Package config loads osdetect's configuration with Viper.
//
// The file is config.yaml, searched in the working directory and then in
// paths.ConfigDir(). Every key can also be set from the environment with
// the OSDETECT_ prefix, e.g. OSDETECT_PLATFORM=linux.
//
//	version: 1
//	platform: linux              # optional dispatch override
//	os_release_path: /etc/os-release
//	output: text                 # text, json, yaml or toml
//	log_format: text             # text or json
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// Load validates the result; use [Validate] directly to inspect every problem.
package config
